package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/matzehuels/includecycle/pkg/errors"
	"github.com/matzehuels/includecycle/pkg/pipeline"
	"github.com/matzehuels/includecycle/pkg/report"
)

// runCheck scans the tree and writes the cycle report. A found cycle is
// returned as ErrCycleDetected after it has been printed.
func (c *CLI) runCheck(cmd *cobra.Command, args []string, format string) error {
	root := resolveRoot(args)
	opts, err := c.scan.options(cmd, root, format)
	if err != nil {
		return err
	}

	result, err := c.newRunner().Execute(cmd.Context(), opts)
	if err != nil {
		return c.reportFailure(root, opts.Format, err)
	}
	c.Logger.Debug("analysis complete",
		"files", result.Stats.Files,
		"directories", result.Stats.Nodes,
		"edges", result.Stats.Edges,
		"scan", result.Stats.ScanTime,
		"detect", result.Stats.DetectTime)

	switch opts.Format {
	case pipeline.FormatJSON:
		err := report.WriteJSON(c.Out, report.Summary{
			Root:     root,
			Graph:    result.Graph,
			Cycle:    result.Cycle,
			HasCycle: result.HasCycle,
		})
		if err != nil {
			return err
		}
	default:
		report.New(c.Out).Result(result.Graph, result.Cycle, result.HasCycle)
	}

	if result.HasCycle {
		return ErrCycleDetected
	}
	return nil
}

// reportFailure prints the text-mode message for a failed scan. Errors in
// JSON mode are left to main so stdout stays machine-readable.
func (c *CLI) reportFailure(root, format string, err error) error {
	if format == pipeline.FormatJSON {
		return err
	}

	var ie *errors.IntegrityError
	switch {
	case stderrors.As(err, &ie):
		report.New(c.Out).Integrity(ie)
		return reported(err)
	case errors.Is(err, errors.ErrCodeInvalidRoot) && stderrors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(c.Out, "Error: Directory '%s' does not exist.\n", root)
		return reported(err)
	}
	return err
}
