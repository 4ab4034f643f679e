package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/includecycle/pkg/pipeline"
)

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  []string
	}{
		{
			name:  "success",
			print: func(b *bytes.Buffer) { printSuccess(b, "Exported %s", "graph.dot") },
			want:  []string{iconSuccess, "Exported graph.dot"},
		},
		{
			name:  "error",
			print: func(b *bytes.Buffer) { printError(b, "render failed") },
			want:  []string{iconError, "render failed"},
		},
		{
			name:  "warning",
			print: func(b *bytes.Buffer) { printWarning(b, "cycle: %s", "a -> b -> a") },
			want:  []string{iconWarning, "cycle: a -> b -> a"},
		},
		{
			name:  "file",
			print: func(b *bytes.Buffer) { printFile(b, "out.svg") },
			want:  []string{iconArrow, "out.svg"},
		},
		{
			name:  "next step",
			print: func(b *bytes.Buffer) { printNextStep(b, "Browse edges", "includecycle inspect src") },
			want:  []string{"Browse edges:", "includecycle inspect src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, pipeline.Stats{
		Files:    1,
		Skipped:  2,
		Nodes:    3,
		Edges:    4,
		ScanTime: 5 * time.Millisecond,
	})

	got := buf.String()
	for _, want := range []string{"1 file ", "3 directories", "4 edges", "2 skipped", "5ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("printStats() = %q, missing %q", got, want)
		}
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		noun string
		want string
	}{
		{0, "edge", "0 edges"},
		{1, "edge", "1 edge"},
		{1, "directory", "1 directory"},
		{2, "directory", "2 directories"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, tt.noun); got != tt.want {
			t.Errorf("plural(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
		}
	}
}
