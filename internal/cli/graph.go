package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/includecycle/pkg/pipeline"
	"github.com/matzehuels/includecycle/pkg/report"
)

// graphCommand creates the graph command for exporting the directory graph.
func (c *CLI) graphCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "graph [root]",
		Short: "Export the directory dependency graph",
		Long: `Export the directory dependency graph as Graphviz DOT, rendered SVG or JSON.

Edges are labelled with the headers that create them. Edges on the detected
cycle, if any, are drawn in red. The format is taken from --format, then from
the extension of --output, and defaults to DOT.`,
		Example: `  includecycle graph src -o deps.svg
  includecycle graph src --format json | jq '.edges'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args, output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "export format: dot, svg, json")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, args []string, output, format string) error {
	ctx := cmd.Context()
	format = exportFormat(format, output)
	if err := pipeline.ValidateExportFormat(format); err != nil {
		return err
	}

	root := resolveRoot(args)
	opts, err := c.scan.options(cmd, root, "")
	if err != nil {
		return err
	}
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return c.reportFailure(root, pipeline.FormatText, err)
	}

	summary := report.Summary{
		Root:     root,
		Graph:    result.Graph,
		Cycle:    result.Cycle,
		HasCycle: result.HasCycle,
	}
	if err := c.exportGraph(ctx, format, output, summary); err != nil || output == "" {
		return err
	}

	printSuccess(c.Out, "Exported %s graph", strings.ToUpper(format))
	printFile(c.Out, output)
	printStats(c.Out, result.Stats)
	if result.HasCycle {
		printWarning(c.Out, "cycle: %s", result.Cycle)
		printNextStep(c.Out, "Browse the cycle", "includecycle inspect "+root)
	}
	return nil
}

// exportGraph writes the graph to output, or to c.Out when output is empty.
func (c *CLI) exportGraph(ctx context.Context, format, output string, s report.Summary) error {
	if output != "" && format == pipeline.FormatJSON {
		return report.ExportJSON(s, output)
	}

	data, err := c.renderGraph(ctx, format, output != "", s)
	if err != nil {
		return err
	}
	if output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

// renderGraph produces the export bytes. SVG rendering shows a spinner when
// the result goes to a file.
func (c *CLI) renderGraph(ctx context.Context, format string, toFile bool, s report.Summary) ([]byte, error) {
	switch format {
	case pipeline.FormatJSON:
		var buf bytes.Buffer
		if err := report.WriteJSON(&buf, s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case pipeline.FormatSVG:
		dot := report.ToDOT(s.Graph, s.Cycle)
		if !toFile {
			return report.RenderSVG(ctx, dot)
		}
		prog := newProgress(c.Logger)
		spinner := newSpinnerWithContext(ctx, c.Out, "Rendering SVG...")
		spinner.Start()
		svg, err := report.RenderSVG(ctx, dot)
		if err != nil {
			spinner.StopWithError("SVG rendering failed")
			return nil, err
		}
		spinner.Stop()
		prog.done(fmt.Sprintf("Rendered %d directories", s.Graph.NodeCount()))
		return svg, nil
	default:
		return []byte(report.ToDOT(s.Graph, s.Cycle)), nil
	}
}

// exportFormat picks the export format from the flag or the output file
// extension.
func exportFormat(flag, output string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".svg":
		return pipeline.FormatSVG
	case ".json":
		return pipeline.FormatJSON
	default:
		return pipeline.FormatDOT
	}
}
