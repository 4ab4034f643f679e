package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/includecycle/pkg/cycle"
	"github.com/matzehuels/includecycle/pkg/depgraph"
	"github.com/matzehuels/includecycle/pkg/observability"
)

// Runner executes the scan → detect pipeline.
//
// The Runner holds no per-run state, so one Runner can serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Stats records the size and timing of a run.
type Stats struct {
	Files      int
	Skipped    int
	Nodes      int
	Edges      int
	ScanTime   time.Duration
	DetectTime time.Duration
}

// Result is the outcome of a completed run. A found cycle is a result, not
// an error.
type Result struct {
	Graph    *depgraph.Graph
	Cycle    cycle.Cycle
	HasCycle bool
	Stats    Stats
}

// Execute scans opts.Root and searches the resulting graph for a cycle.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	scanStart := time.Now()
	g, stats, err := r.Scan(ctx, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Graph: g,
		Stats: Stats{
			Files:    stats.Files,
			Skipped:  stats.Skipped,
			Nodes:    g.NodeCount(),
			Edges:    g.EdgeCount(),
			ScanTime: time.Since(scanStart),
		},
	}

	detectStart := time.Now()
	result.Cycle, result.HasCycle = r.Detect(ctx, g)
	result.Stats.DetectTime = time.Since(detectStart)

	return result, nil
}

// Scan builds the dependency graph only.
func (r *Runner) Scan(ctx context.Context, opts Options) (*depgraph.Graph, depgraph.Stats, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, depgraph.Stats{}, err
	}
	if err := depgraph.ValidateRoot(opts.Root); err != nil {
		return nil, depgraph.Stats{}, err
	}

	root := opts.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	r.Logger.Info(fmt.Sprintf("Scanning source files in: %s", root))

	start := time.Now()
	g, stats, err := depgraph.Build(ctx, depgraph.Options{
		Root:       opts.Root,
		Extensions: opts.Extensions,
		IgnoreDirs: opts.IgnoreDirs,
		Jobs:       opts.Jobs,
		Logger:     r.Logger,
	})
	if err != nil {
		return nil, stats, err
	}

	r.Logger.Info(fmt.Sprintf("Scanned %d source files", stats.Files),
		"skipped", stats.Skipped,
		"directories", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start).Round(time.Millisecond))
	return g, stats, nil
}

// Detect searches a finished graph for a cycle.
func (r *Runner) Detect(ctx context.Context, g *depgraph.Graph) (cycle.Cycle, bool) {
	hooks := observability.Detect()
	start := time.Now()
	hooks.OnDetectStart(ctx, g.NodeCount())

	c, found := cycle.Find(g)

	hooks.OnDetectComplete(ctx, c.Len(), time.Since(start))
	if found {
		r.Logger.Debug("cycle found", "path", c.String())
	} else {
		r.Logger.Debug("no cycle found", "directories", g.NodeCount())
	}
	return c, found
}
