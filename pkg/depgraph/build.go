package depgraph

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/includecycle/pkg/errors"
	"github.com/matzehuels/includecycle/pkg/observability"
	"github.com/matzehuels/includecycle/pkg/scan"
)

// Options configures [Build].
type Options struct {
	// Root is the analysis root. Include paths with a separator resolve
	// against it, and directory identifiers are relative to it.
	Root string

	// Extensions and IgnoreDirs extend [scan.DefaultExtensions] and
	// [scan.DefaultIgnoreDirs].
	Extensions []string
	IgnoreDirs []string

	// Jobs bounds how many files are read and extracted concurrently.
	// Values below 2 scan sequentially.
	Jobs int

	// Logger receives warnings for skipped files. Defaults to log.Default().
	Logger *log.Logger
}

// Stats summarises a build.
type Stats struct {
	Files   int // source files found, including skipped ones
	Skipped int // files left out because they could not be read
}

// Build scans every source file under opts.Root and returns the directory
// dependency graph.
//
// A missing or non-directory root fails with ErrCodeInvalidRoot before any
// file is read. The first unresolvable include fails the whole build with an
// [*errors.IntegrityError]; no partial graph is returned.
func Build(ctx context.Context, opts Options) (*Graph, Stats, error) {
	if err := ValidateRoot(opts.Root); err != nil {
		return nil, Stats{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	hooks := observability.Scan()
	start := time.Now()
	hooks.OnScanStart(ctx, opts.Root)

	b := &builder{
		graph:     New(),
		extractor: scan.NewExtractor(opts.Root),
		logger:    logger,
		hooks:     hooks,
	}

	walker := scan.Walker{
		Filter: scan.NewFilter(opts.Extensions, opts.IgnoreDirs),
		OnError: func(path string, err error) {
			logger.Warn("could not list directory", "path", path, "err", err)
		},
	}
	logger.Debug("scanning", "root", opts.Root, "extensions", walker.Filter.Extensions(), "jobs", max(opts.Jobs, 1))

	var files []scan.File
	err := walker.Walk(ctx, opts.Root, func(f scan.File) error {
		files = append(files, f)
		return nil
	})
	if err == nil {
		if opts.Jobs > 1 {
			err = b.parallel(ctx, files, opts.Jobs)
		} else {
			err = b.sequential(ctx, files)
		}
	}

	stats := Stats{Files: len(files), Skipped: b.skipped}
	hooks.OnScanComplete(ctx, opts.Root, stats.Files, b.graph.EdgeCount(), time.Since(start), err)
	if err != nil {
		return nil, stats, err
	}
	return b.graph, stats, nil
}

// ValidateRoot checks that root exists and is a directory.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRoot, err, "directory '%s' does not exist", root)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeInvalidRoot, "'%s' is not a directory", root)
	}
	return nil
}

type builder struct {
	graph     *Graph
	extractor *scan.Extractor
	logger    *log.Logger
	hooks     observability.ScanHooks

	mu      sync.Mutex // guards graph and skipped in parallel mode
	skipped int
}

func (b *builder) sequential(ctx context.Context, files []scan.File) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		refs, ok, err := b.extract(ctx, f)
		if err != nil {
			return err
		}
		b.fold(ctx, f, refs, ok)
	}
	return nil
}

func (b *builder) parallel(ctx context.Context, files []scan.File, jobs int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			refs, ok, err := b.extract(ctx, f)
			if err != nil {
				return err
			}
			local := New()
			n := local.AddRefs(f.Dir, refs)

			b.mu.Lock()
			defer b.mu.Unlock()
			if !ok {
				b.skipped++
				return nil
			}
			b.graph.Merge(local)
			b.hooks.OnFileScanned(ctx, f.Path, n)
			return nil
		})
	}
	return g.Wait()
}

// extract reads one file and returns its references. ok is false when the
// file could not be read; that is logged and not an error.
func (b *builder) extract(ctx context.Context, f scan.File) ([]scan.HeaderRef, bool, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeReadFailed, err, "read %s", f.Path)
		b.logger.Warn("could not read file", "path", f.Path, "err", err)
		b.hooks.OnFileSkipped(ctx, f.Path, werr)
		return nil, false, nil
	}
	refs, err := b.extractor.Extract(f.Path, f.Dir, content)
	if err != nil {
		return nil, false, err
	}
	return refs, true, nil
}

func (b *builder) fold(ctx context.Context, f scan.File, refs []scan.HeaderRef, ok bool) {
	if !ok {
		b.skipped++
		return
	}
	n := b.graph.AddRefs(f.Dir, refs)
	b.hooks.OnFileScanned(ctx, f.Path, n)
}
