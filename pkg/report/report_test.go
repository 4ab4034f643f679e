package report

import (
	"testing"

	"github.com/matzehuels/includecycle/pkg/cycle"
	"github.com/matzehuels/includecycle/pkg/depgraph"
)

// coreUtils returns the two-directory cycle used across the report tests.
func coreUtils(t *testing.T) (*depgraph.Graph, cycle.Cycle) {
	t.Helper()
	g := depgraph.New()
	for _, e := range [][3]string{
		{"core", "utils", "u.h"},
		{"core", "utils", "log.h"},
		{"utils", "core", "a.h"},
		{"app", "core", "a.h"},
	} {
		if err := g.Add(e[0], e[1], e[2]); err != nil {
			t.Fatal(err)
		}
	}
	c, found := cycle.Find(g)
	if !found {
		t.Fatal("fixture graph has no cycle")
	}
	return g, c
}
