package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/includecycle/pkg/cycle"
	"github.com/matzehuels/includecycle/pkg/depgraph"
)

func TestWriteJSON_Cycle(t *testing.T) {
	g, c := coreUtils(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, Summary{Root: "src", Graph: g, Cycle: c, HasCycle: true}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var got jsonReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if _, err := uuid.Parse(got.RunID); err != nil {
		t.Errorf("run_id %q is not a UUID: %v", got.RunID, err)
	}
	if got.Root != "src" || !got.HasCycle {
		t.Errorf("root = %q, has_cycle = %v", got.Root, got.HasCycle)
	}
	if !slices.Equal(got.Cycle, []string{"core", "utils", "core"}) {
		t.Errorf("cycle = %v", got.Cycle)
	}
	if len(got.Legs) != 2 || !slices.Equal(got.Legs[0].Headers, []string{"log.h", "u.h"}) {
		t.Errorf("legs = %+v", got.Legs)
	}
	if !slices.Equal(got.Nodes, []string{"app", "core", "utils"}) {
		t.Errorf("nodes = %v", got.Nodes)
	}
	if len(got.Edges) != 3 {
		t.Errorf("edges = %d, want 3", len(got.Edges))
	}
}

func TestWriteJSON_Clean(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Summary{Root: "src", Graph: depgraph.New()}); err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["cycle"]; ok {
		t.Error("clean report should omit cycle")
	}
	if edges, ok := raw["edges"].([]any); !ok || len(edges) != 0 {
		t.Errorf("edges = %v, want empty array", raw["edges"])
	}
}

func TestWriteJSON_UniqueRunIDs(t *testing.T) {
	s := Summary{Root: "src", Graph: depgraph.New(), Cycle: cycle.Cycle{}}
	ids := make(map[string]bool)
	for i := 0; i < 5; i++ {
		var buf bytes.Buffer
		if err := WriteJSON(&buf, s); err != nil {
			t.Fatal(err)
		}
		var got jsonReport
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		ids[got.RunID] = true
	}
	if len(ids) != 5 {
		t.Errorf("got %d distinct run IDs, want 5", len(ids))
	}
}

func TestExportJSON(t *testing.T) {
	g, c := coreUtils(t)
	path := filepath.Join(t.TempDir(), "report.json")

	if err := ExportJSON(Summary{Root: "src", Graph: g, Cycle: c, HasCycle: true}, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("exported file is not valid JSON")
	}
}

func TestExportJSON_CreateFails(t *testing.T) {
	g, c := coreUtils(t)
	path := filepath.Join(t.TempDir(), "missing", "report.json")

	if err := ExportJSON(Summary{Root: "src", Graph: g, Cycle: c, HasCycle: true}, path); err == nil {
		t.Error("ExportJSON() into a missing directory should fail")
	}
}
