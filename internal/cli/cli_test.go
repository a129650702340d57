package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"compile", "render", "instructions", "design", "serve", "cache", "completion"}
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
}

func TestCompileCommandWritesPattern(t *testing.T) {
	output := filepath.Join(t.TempDir(), "pattern.json")
	_, err := runCommand(t, "compile", "--rounds", "3", "--output", output, "--no-cache")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	p, err := pattern.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if p.RoundCount() != 3 {
		t.Errorf("RoundCount = %d, want 3", p.RoundCount())
	}
}

func TestCompileCommandRejectsBadPitch(t *testing.T) {
	output := filepath.Join(t.TempDir(), "pattern.json")
	_, err := runCommand(t, "compile", "--pitch", "elastic", "--output", output)
	if err == nil {
		t.Fatal("expected error for unknown pitch")
	}
}

func TestRenderCommandFromPatternFile(t *testing.T) {
	dir := t.TempDir()
	patternPath := filepath.Join(dir, "square.json")
	if _, err := runCommand(t, "compile", "--rounds", "2", "--output", patternPath, "--no-cache"); err != nil {
		t.Fatalf("compile: %v", err)
	}

	svgPath := filepath.Join(dir, "square.svg")
	if _, err := runCommand(t, "render", patternPath, "--no-cache", "--output", svgPath); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Error("rendered file is not an SVG document")
	}
}

func TestInstructionsCommandPrintsSteps(t *testing.T) {
	out, err := runCommand(t, "instructions", "--rounds", "3", "--no-cache")
	if err != nil {
		t.Fatalf("instructions: %v", err)
	}
	_ = out
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v", got)
	}
	if got := parseFormats("svg,png"); len(got) != 2 || got[1] != "png" {
		t.Errorf("parseFormats(\"svg,png\") = %v", got)
	}
}

func TestExtensionFor(t *testing.T) {
	if got := extensionFor("text"); got != "txt" {
		t.Errorf("extensionFor(text) = %q, want txt", got)
	}
	if got := extensionFor("svg"); got != "svg" {
		t.Errorf("extensionFor(svg) = %q, want svg", got)
	}
}
