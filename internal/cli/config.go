package cli

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/includecycle/pkg/depgraph"
	"github.com/matzehuels/includecycle/pkg/errors"
	"github.com/matzehuels/includecycle/pkg/pipeline"
)

// configFileName is looked up in the analysis root when --config is not set.
const configFileName = ".includecycle.toml"

// fileConfig is the on-disk configuration.
type fileConfig struct {
	Extensions []string `toml:"extensions"`
	IgnoreDirs []string `toml:"ignore_dirs"`
	Jobs       int      `toml:"jobs"`
	Format     string   `toml:"format"`
}

// loadConfig reads a TOML config file. A missing file is only an error when
// the path was given explicitly. Unknown keys are rejected.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, errors.New(errors.ErrCodeInvalidConfig,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// scanFlags holds the flags shared by every command that scans a tree.
type scanFlags struct {
	jobs   int
	ext    []string
	ignore []string
	config string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.IntVarP(&f.jobs, "jobs", "j", pipeline.DefaultJobs, "number of files scanned in parallel")
	pf.StringSliceVar(&f.ext, "ext", nil, "additional source file extension (repeatable)")
	pf.StringSliceVar(&f.ignore, "ignore", nil, "additional directory name to skip (repeatable)")
	pf.StringVar(&f.config, "config", "", "config file (default: <root>/"+configFileName+")")
}

// options merges the config file with the command line. Flags win over the
// file; extensions and ignored directories from both are added to the
// built-in defaults.
func (f *scanFlags) options(cmd *cobra.Command, root, format string) (pipeline.Options, error) {
	var cfg fileConfig
	switch {
	case f.config != "":
		c, err := loadConfig(f.config, true)
		if err != nil {
			return pipeline.Options{}, err
		}
		cfg = c
	case depgraph.ValidateRoot(root) == nil:
		// An unusable root is reported by the scan, not as a config error.
		c, err := loadConfig(filepath.Join(root, configFileName), false)
		if err != nil {
			return pipeline.Options{}, err
		}
		cfg = c
	}

	opts := pipeline.Options{
		Root:       root,
		Extensions: append(cfg.Extensions, f.ext...),
		IgnoreDirs: append(cfg.IgnoreDirs, f.ignore...),
		Jobs:       cfg.Jobs,
		Format:     cfg.Format,
	}
	if cmd.Flags().Changed("jobs") || opts.Jobs == 0 {
		opts.Jobs = f.jobs
	}
	if format != "" {
		opts.Format = format
	}
	return opts, nil
}
