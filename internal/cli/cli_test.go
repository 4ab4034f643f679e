package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/includecycle/pkg/observability"
)

// writeTree creates files under a temp dir and returns its path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// cycleTree has core and utils including each other.
func cycleTree(t *testing.T) string {
	return writeTree(t, map[string]string{
		"core/a.h":        "",
		"core/a.cpp":      `#include "utils/helper.h"`,
		"utils/helper.h":  "",
		"utils/helper.cc": `#include "core/a.h"`,
	})
}

// cleanTree has app depending on lib only.
func cleanTree(t *testing.T) string {
	return writeTree(t, map[string]string{
		"lib/lib.h":    "",
		"lib/lib.cpp":  `#include "lib.h"`,
		"app/main.cpp": `#include "lib/lib.h"` + "\n#include <vector>\n",
	})
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"graph", "inspect", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"jobs", "ext", "ignore", "config"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
	if root.Flags().Lookup("format") == nil {
		t.Error("missing --format flag")
	}
}

func TestResolveRoot(t *testing.T) {
	if got := resolveRoot([]string{"some/dir"}); got != "some/dir" {
		t.Errorf("resolveRoot(arg) = %q, want %q", got, "some/dir")
	}
	if got := resolveRoot(nil); filepath.Base(got) != defaultRootDir {
		t.Errorf("resolveRoot(nil) = %q, want a path ending in %q", got, defaultRootDir)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := runCLI(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, "includecycle") {
				t.Errorf("completion script does not mention the command name")
			}
		})
	}

	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestLogHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	logger := newLogger(&buf, LogDebug)
	registerLogHooks(logger)

	ctx := context.Background()
	observability.Scan().OnFileScanned(ctx, "core/a.cpp", 2)
	observability.Detect().OnDetectComplete(ctx, 3, 0)

	got := buf.String()
	for _, want := range []string{"scanned file", "core/a.cpp", "cycle detection finished"} {
		if !strings.Contains(got, want) {
			t.Errorf("debug log %q missing %q", got, want)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "includecycle version ") {
		t.Errorf("version output = %q", out)
	}
}

func TestCheck_RootNamedLikeSubcommand(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "graph")
	if err := os.MkdirAll(filepath.Join(root, "lib"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "lib", "lib.cpp"), []byte("int x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(parent)

	out, err := runCLI(t, "./graph")
	if err != nil {
		t.Fatalf("check ./graph: %v", err)
	}
	if out != "No circular dependencies detected.\n" {
		t.Errorf("output = %q", out)
	}

	help := New(io.Discard, LogInfo).RootCommand().Long
	if !strings.Contains(help, "./graph") {
		t.Error("root help should show how to pass a root named like a subcommand")
	}
}
