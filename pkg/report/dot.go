package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/includecycle/pkg/cycle"
	"github.com/matzehuels/includecycle/pkg/depgraph"
)

// ToDOT converts the directory graph to Graphviz DOT. Edges are labelled
// with their headers; edges on the cycle (if any) are drawn red and bold.
func ToDOT(g *depgraph.Graph, c cycle.Cycle) string {
	onCycle := make(map[depgraph.Pair]bool)
	for i := 0; i+1 < len(c.Path); i++ {
		onCycle[depgraph.Pair{From: c.Path[i], To: c.Path[i+1]}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph includes {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", strings.Join(e.Headers, "\n"))}
		if onCycle[depgraph.Pair{From: e.From, To: e.To}] {
			attrs = append(attrs, "color=red", "fontcolor=red", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
