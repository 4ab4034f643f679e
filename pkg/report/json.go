package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/includecycle/pkg/cycle"
	"github.com/matzehuels/includecycle/pkg/depgraph"
)

// Summary bundles what the machine-readable outputs need.
type Summary struct {
	Root     string
	Graph    *depgraph.Graph
	Cycle    cycle.Cycle
	HasCycle bool
}

type jsonReport struct {
	RunID    string     `json:"run_id"`
	Root     string     `json:"root"`
	HasCycle bool       `json:"has_cycle"`
	Cycle    []string   `json:"cycle,omitempty"`
	Legs     []jsonEdge `json:"legs,omitempty"`
	Nodes    []string   `json:"nodes"`
	Edges    []jsonEdge `json:"edges"`
}

type jsonEdge struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Headers []string `json:"headers"`
}

// WriteJSON encodes the graph and cycle as indented JSON. Each call gets a
// fresh run_id so reports from repeated CI runs can be told apart.
func WriteJSON(w io.Writer, s Summary) error {
	out := jsonReport{
		RunID:    uuid.NewString(),
		Root:     s.Root,
		HasCycle: s.HasCycle,
		Nodes:    s.Graph.Nodes(),
		Edges:    []jsonEdge{},
	}
	for _, e := range s.Graph.Edges() {
		out.Edges = append(out.Edges, jsonEdge{From: e.From, To: e.To, Headers: e.Headers})
	}
	if s.HasCycle {
		out.Cycle = s.Cycle.Path
		for _, leg := range s.Cycle.Legs(s.Graph) {
			out.Legs = append(out.Legs, jsonEdge{From: leg.From, To: leg.To, Headers: leg.Headers})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the JSON report to a file at path. A failed close is
// reported like a failed write.
func ExportJSON(s Summary, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteJSON(f, s)
}
