// Package cli implements the includecycle command-line interface.
//
// The root command scans a C/C++ tree and reports whether quoted includes
// create a dependency cycle between directories. Subcommands export the
// directory graph and browse it interactively. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - includecycle [root]: check for a cycle (default action)
//   - graph: export the directory graph as DOT, SVG or JSON
//   - inspect: browse edges and their headers in a terminal UI
//   - completion: generate shell completion scripts
//
// # Exit Codes
//
// [ExitCode] maps errors returned by the commands to process exit codes:
// 0 for a clean tree, 1 for a missing root, a broken include or a cycle,
// and 130 on interrupt.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/includecycle/pkg/buildinfo"
	"github.com/matzehuels/includecycle/pkg/observability"
	"github.com/matzehuels/includecycle/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// defaultRootDir is the analysis root used when none is given, relative to
// the directory holding the executable.
const defaultRootDir = "src"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives reports and exported data. Defaults to os.Stdout.
	Out io.Writer

	scan scanFlags
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command itself performs the cycle check.
func (c *CLI) RootCommand() *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:   "includecycle [root]",
		Short: "includecycle finds circular include dependencies between directories",
		Long: `includecycle scans C and C++ sources for quoted #include directives and maps
which directories depend on which others. If those dependencies form a loop
it prints the cycle together with the headers responsible for each step.

The analysis root defaults to the "src" directory next to the executable.
A root named like a subcommand (graph, inspect, completion) must be written
as a path, e.g. ./graph.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.Logger.Debug("includecycle", buildinfo.LogFields()...)
			registerLogHooks(c.Logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args, format)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVarP(&format, "format", "f", "", "report format: text (default), json")
	c.scan.register(root)

	// Register all subcommands
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Paths
// =============================================================================

// resolveRoot returns the analysis root from args, or the default "src"
// directory next to the executable.
func resolveRoot(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	exe, err := os.Executable()
	if err != nil {
		return defaultRootDir
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), defaultRootDir)
}

// =============================================================================
// Observability
// =============================================================================

// registerLogHooks routes scan and detect events to the debug log.
func registerLogHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetScanHooks(h)
	observability.SetDetectHooks(h)
}
