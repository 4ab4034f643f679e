package report

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/includecycle/pkg/cycle"
)

func TestToDOT(t *testing.T) {
	g, c := coreUtils(t)
	dot := ToDOT(g, c)

	for _, want := range []string{
		"digraph includes {",
		`"app";`,
		`"core";`,
		`"utils";`,
		`"app" -> "core" [label="a.h"];`,
		`"core" -> "utils" [label="log.h\nu.h", color=red, fontcolor=red, penwidth=2];`,
		`"utils" -> "core" [label="a.h", color=red, fontcolor=red, penwidth=2];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in\n%s", want, dot)
		}
	}
}

func TestToDOT_NoCycle(t *testing.T) {
	g, _ := coreUtils(t)
	dot := ToDOT(g, cycle.Cycle{})

	if strings.Contains(dot, "color=red") {
		t.Error("ToDOT() highlighted edges without a cycle")
	}
}

func TestRenderSVG(t *testing.T) {
	g, c := coreUtils(t)

	svg, err := RenderSVG(context.Background(), ToDOT(g, c))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}
