package main

// Notes:
// - discoverFiles: we test extension matching, name ordering, and that
//   subdirectories and non-regular entries are skipped.
// - resolveInputDir / resolveIndexPath: we test argument precedence and the
//   default index location next to the input directory.
// - validateWorkers: we test boundaries.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// writeFiles creates files under dir with the given contents.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Markdown discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("only top-level .md files in name order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"b.md":           "# B",
			"a.md":           "# A",
			"c.markdown":     "# C",
			"d.MD":           "# D",
			"notes.txt":      "text",
			"e.md.bak":       "# E",
			"sub/nested.md":  "# Nested",
			"existing.html":  "<p>old</p>",
			"z-last-page.md": "# Z",
		})

		files, err := discoverFiles(dir)
		if err != nil {
			t.Fatalf("discoverFiles() error: %v", err)
		}

		want := []string{"a", "b", "z-last-page"}
		if len(files) != len(want) {
			t.Fatalf("got %d files, want %d: %v", len(files), len(want), files)
		}
		for i, name := range want {
			if files[i].InputPath != filepath.Join(dir, name+".md") {
				t.Errorf("files[%d].InputPath = %q, want %s.md", i, files[i].InputPath, name)
			}
			if files[i].OutputPath != filepath.Join(dir, name+".html") {
				t.Errorf("files[%d].OutputPath = %q, want %s.html", i, files[i].OutputPath, name)
			}
		}
	})

	t.Run("directory named like markdown is skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, "drafts.md"), 0o755); err != nil {
			t.Fatal(err)
		}

		files, err := discoverFiles(dir)
		if err != nil {
			t.Fatalf("discoverFiles() error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("expected no files, got %v", files)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(t.TempDir())
		if err != nil {
			t.Fatalf("discoverFiles() error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("expected no files, got %v", files)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveInputDir - Input directory selection
// ---------------------------------------------------------------------------

func TestResolveInputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	other := t.TempDir()
	file := filepath.Join(dir, "a.md")
	writeFiles(t, dir, map[string]string{"a.md": "# A"})

	tests := []struct {
		name      string
		args      []string
		configDir string
		want      string
		wantErr   error
	}{
		{name: "argument", args: []string{dir}, want: dir},
		{name: "config fallback", configDir: other, want: other},
		{name: "argument beats config", args: []string{dir}, configDir: other, want: dir},
		{name: "nothing given", wantErr: md2html.ErrNoInput},
		{name: "missing", args: []string{filepath.Join(dir, "missing")}, wantErr: md2html.ErrNoInput},
		{name: "file instead of dir", args: []string{file}, wantErr: md2html.ErrInputNotDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Input.Dir = tt.configDir

			got, err := resolveInputDir(tt.args, cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !strings.Contains(err.Error(), "hint:") {
					t.Errorf("expected a hint in %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveInputDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveIndexPath - Index page location
// ---------------------------------------------------------------------------

func TestResolveIndexPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inputDir string
		index    string
		want     string
	}{
		{"next to input dir", filepath.Join("site", "lecture"), "", filepath.Join("site", "index.html")},
		{"trailing separator", filepath.Join("site", "lecture") + string(filepath.Separator), "", filepath.Join("site", "index.html")},
		{"relative single dir", "lecture", "", "index.html"},
		{"configured path wins", "lecture", filepath.Join("out", "toc.html"), filepath.Join("out", "toc.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Output.Index = tt.index

			if got := resolveIndexPath(tt.inputDir, cfg); got != tt.want {
				t.Errorf("resolveIndexPath(%q) = %q, want %q", tt.inputDir, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1, false},
		{config.MaxWorkers, false},
		{config.MaxWorkers + 1, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidWorkerCount) {
				t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", tt.n, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("validateWorkers(%d) unexpected error: %v", tt.n, err)
		}
	}
}
