package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunLayout_PrintsBounds(t *testing.T) {
	path := writeScene(t, `
[root]
name = "app"
display = "flex"
direction = "column"
align = "stretch"

  [[root.children]]
  name = "header"
  height = "3"

  [[root.children]]
  name = "body"
  grow = 1.0
`)

	var buf bytes.Buffer
	c := New(io.Discard, LogInfo)
	if err := c.runLayout(&buf, path, 80, 24, false); err != nil {
		t.Fatalf("runLayout: %v", err)
	}

	want := []string{
		"app x=0 y=0 w=80 h=24",
		"  header x=0 y=0 w=80 h=3",
		"  body x=0 y=3 w=80 h=21",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("output lines = %d, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunLayout_PaintsGrid(t *testing.T) {
	path := writeScene(t, `
[root]
border = "single"
`)

	var buf bytes.Buffer
	c := New(io.Discard, LogInfo)
	if err := c.runLayout(&buf, path, 4, 3, true); err != nil {
		t.Fatalf("runLayout: %v", err)
	}

	want := "┌──┐\n│  │\n└──┘\n"
	if buf.String() != want {
		t.Errorf("painted grid = %q, want %q", buf.String(), want)
	}
}

func TestRunLayout_MissingFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runLayout(io.Discard, "does-not-exist.toml", 80, 24, false)
	if err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
	if !strings.Contains(err.Error(), "does-not-exist.toml") {
		t.Errorf("error should name the file, got %q", err)
	}
}

func TestRootCommand_RegistersLayout(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	found := false
	for _, cmd := range root.Commands() {
		if cmd.Name() == "layout" {
			found = true
		}
	}
	if !found {
		t.Error("root command should register the layout subcommand")
	}
}
