// Package pipeline runs the include analysis end to end.
//
// The pipeline has two stages:
//
//  1. Scan: walk the analysis root and build the directory dependency graph
//  2. Detect: search the finished graph for a witnessing cycle
//
// Detection only starts once the graph is complete. A broken include stops
// the pipeline during the scan, so no cycle analysis runs on a partial graph.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Root: "src"})
//	if err != nil {
//	    return err
//	}
//	if result.HasCycle {
//	    fmt.Println(result.Cycle)
//	}
package pipeline

import (
	"github.com/matzehuels/includecycle/pkg/errors"
)

// Report formats written by the check command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Graph export formats. JSON is shared with the report formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

const (
	// DefaultJobs scans sequentially.
	DefaultJobs = 1

	// MaxJobs caps parallel file scanning.
	MaxJobs = 64
)

var (
	validReportFormats = map[string]bool{FormatText: true, FormatJSON: true}
	validExportFormats = map[string]bool{FormatDOT: true, FormatSVG: true, FormatJSON: true}
)

// Options configures a pipeline run.
type Options struct {
	// Root is the analysis root directory.
	Root string

	// Extensions and IgnoreDirs are added to the scanner's defaults.
	Extensions []string
	IgnoreDirs []string

	// Jobs is the number of files scanned concurrently.
	Jobs int

	// Format selects the report format (text or json).
	Format string
}

// ValidateAndSetDefaults fills zero values and rejects invalid settings.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Root == "" {
		return errors.New(errors.ErrCodeInvalidRoot, "analysis root must not be empty")
	}
	if o.Jobs <= 0 {
		o.Jobs = DefaultJobs
	}
	if o.Jobs > MaxJobs {
		return errors.New(errors.ErrCodeInvalidConfig, "jobs must be at most %d, got %d", MaxJobs, o.Jobs)
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	for _, ext := range o.Extensions {
		if err := errors.ValidateExtension(ext); err != nil {
			return err
		}
	}
	for _, dir := range o.IgnoreDirs {
		if err := errors.ValidateDirName(dir); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFormat checks a report format.
func ValidateFormat(format string) error {
	if !validReportFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid report format: %s (must be text or json)", format)
	}
	return nil
}

// ValidateExportFormat checks a graph export format.
func ValidateExportFormat(format string) error {
	if !validExportFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid export format: %s (must be dot, svg or json)", format)
	}
	return nil
}
