// Package cycle finds a witnessing cycle in a directory dependency graph.
//
// [Find] reports whether the graph contains a cycle and, if so, returns one
// closed walk through it. It does not look for the shortest cycle or list all
// of them; a graph with several independent cycles reports the first one met
// when directories are visited in lexicographic order, so the result is
// reproducible for a given tree.
package cycle

import (
	"slices"
	"strings"

	"github.com/matzehuels/includecycle/pkg/depgraph"
)

// Cycle is a closed walk: Path[0] == Path[len(Path)-1] and every
// consecutive pair is an edge of the graph it was found in.
type Cycle struct {
	Path []string
}

// Leg is one step of a cycle with the headers that create it.
type Leg struct {
	From    string
	To      string
	Headers []string
}

// Len returns the number of directories in the path, counting the closing
// repeat.
func (c Cycle) Len() int { return len(c.Path) }

// Legs pairs consecutive directories of the path with their headers in g.
func (c Cycle) Legs(g *depgraph.Graph) []Leg {
	if len(c.Path) < 2 {
		return nil
	}
	legs := make([]Leg, 0, len(c.Path)-1)
	for i := 0; i+1 < len(c.Path); i++ {
		from, to := c.Path[i], c.Path[i+1]
		legs = append(legs, Leg{From: from, To: to, Headers: g.Headers(from, to)})
	}
	return legs
}

// String renders the path as "a -> b -> a".
func (c Cycle) String() string {
	return strings.Join(c.Path, " -> ")
}

// Find searches g for a cycle.
//
// Every directory is tried as a starting point in sorted order. From each
// start a depth-first search follows outgoing edges in sorted order,
// keeping the active path and a memo of directories already explored from
// that start. Reaching a directory on the active path closes a cycle: the
// path suffix from its first occurrence, plus the directory again. Reaching
// a memoised directory off the path ends that branch. The search stops at
// the first cycle.
func Find(g *depgraph.Graph) (Cycle, bool) {
	for _, start := range g.Nodes() {
		s := &search{graph: g, memo: make(map[string]bool)}
		if s.visit(start) {
			return Cycle{Path: s.cycle}, true
		}
	}
	return Cycle{}, false
}

type search struct {
	graph *depgraph.Graph
	path  []string
	memo  map[string]bool
	cycle []string
}

func (s *search) visit(node string) bool {
	if i := slices.Index(s.path, node); i >= 0 {
		s.cycle = append(slices.Clone(s.path[i:]), node)
		return true
	}
	if s.memo[node] {
		return false
	}
	s.memo[node] = true

	s.path = append(s.path, node)
	for _, next := range s.graph.Targets(node) {
		if s.visit(next) {
			return true
		}
	}
	s.path = s.path[:len(s.path)-1]
	return false
}
