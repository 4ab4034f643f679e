package depgraph

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/matzehuels/includecycle/pkg/scan"
)

var (
	// ErrInvalidDir is returned by [Graph.Add] when either directory
	// identifier is empty.
	ErrInvalidDir = errors.New("directory identifier must not be empty")

	// ErrSelfLoop is returned by [Graph.Add] when source and target are the
	// same directory. Same-directory includes carry no dependency.
	ErrSelfLoop = errors.New("edge source and target must differ")

	// ErrInvalidHeader is returned by [Graph.Add] when the header name is
	// empty.
	ErrInvalidHeader = errors.New("header name must not be empty")
)

// Pair is an ordered (source, target) directory pair.
type Pair struct {
	From string
	To   string
}

// Edge is a dependency of From on To together with the headers causing it.
type Edge struct {
	From    string
	To      string
	Headers []string // sorted, deduplicated
}

// Graph maps directory pairs to the set of headers responsible for each
// dependency.
//
// The zero value is not usable; use [New].
type Graph struct {
	edges    map[Pair]map[string]struct{}
	outgoing map[string]map[string]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		edges:    make(map[Pair]map[string]struct{}),
		outgoing: make(map[string]map[string]struct{}),
	}
}

// Add unions header into the edge set for from → to, creating the edge if
// absent. Adding the same header twice is a no-op.
func (g *Graph) Add(from, to, header string) error {
	if from == "" || to == "" {
		return ErrInvalidDir
	}
	if from == to {
		return ErrSelfLoop
	}
	if header == "" {
		return ErrInvalidHeader
	}

	p := Pair{From: from, To: to}
	set, ok := g.edges[p]
	if !ok {
		set = make(map[string]struct{})
		g.edges[p] = set
		if g.outgoing[from] == nil {
			g.outgoing[from] = make(map[string]struct{})
		}
		g.outgoing[from][to] = struct{}{}
	}
	set[header] = struct{}{}
	return nil
}

// AddRefs folds the references extracted from one file in directory dir.
// References owned by dir itself are skipped. It returns the number of
// cross-directory references folded in.
func (g *Graph) AddRefs(dir string, refs []scan.HeaderRef) int {
	n := 0
	for _, ref := range refs {
		if ref.Dir == dir {
			continue
		}
		if err := g.Add(dir, ref.Dir, ref.Name); err == nil {
			n++
		}
	}
	return n
}

// Merge unions every edge of other into g.
func (g *Graph) Merge(other *Graph) {
	for p, set := range other.edges {
		for h := range set {
			_ = g.Add(p.From, p.To, h)
		}
	}
}

// HasEdge reports whether from depends on to.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edges[Pair{From: from, To: to}]
	return ok
}

// Headers returns the sorted header names responsible for from → to, or
// nil if there is no such edge.
func (g *Graph) Headers(from, to string) []string {
	set, ok := g.edges[Pair{From: from, To: to}]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// Targets returns the directories that dir depends on, sorted.
func (g *Graph) Targets(dir string) []string {
	return slices.Sorted(maps.Keys(g.outgoing[dir]))
}

// Nodes returns every directory that appears as a source or target of an
// edge, sorted.
func (g *Graph) Nodes() []string {
	seen := make(map[string]struct{}, len(g.outgoing))
	for p := range g.edges {
		seen[p.From] = struct{}{}
		seen[p.To] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Edges returns all edges sorted by (From, To).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for p := range g.edges {
		edges = append(edges, Edge{From: p.From, To: p.To, Headers: g.Headers(p.From, p.To)})
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return edges
}

// NodeCount returns the number of distinct directories in the graph.
func (g *Graph) NodeCount() int { return len(g.Nodes()) }

// EdgeCount returns the number of distinct directory pairs.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Equal reports whether both graphs have the same edges with the same
// header sets.
func (g *Graph) Equal(other *Graph) bool {
	if len(g.edges) != len(other.edges) {
		return false
	}
	for p, set := range g.edges {
		otherSet, ok := other.edges[p]
		if !ok || !maps.Equal(set, otherSet) {
			return false
		}
	}
	return true
}
