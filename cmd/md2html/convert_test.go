package main

// Notes:
// - runConvert: end-to-end builds on temp directories with the real
//   converter and a fixed clock. We check page ids, titles, the index
//   listing and links, the summary line, and failure handling in strict and
//   keep-going modes.
// - Tests that rely on process environment stay parallel: runConvert only
//   reads MD2HTML_* variables, which no parallel test sets.
// - Signal-driven cancellation is covered by convertBatch tests.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

var buildTime = time.Date(2024, 3, 15, 14, 7, 9, 0, time.UTC)

// testEnv returns an Environment with a fixed clock and captured output.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return buildTime },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// runConvertArgs parses args like the CLI and runs a build.
func runConvertArgs(t *testing.T, env *Environment, args ...string) error {
	t.Helper()
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("parseConvertFlags(%v): %v", args, err)
	}
	return runConvert(context.Background(), positional, flags, env)
}

// readDoc parses an HTML file with goquery.
func readDoc(t *testing.T, path string) *goquery.Document {
	t.Helper()
	f, err := os.Open(path) // #nosec G304 -- test file
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return doc
}

// lectureSite creates root/lecture with the given markdown files.
func lectureSite(t *testing.T, files map[string]string) (root, lecture string) {
	t.Helper()
	root = t.TempDir()
	lecture = filepath.Join(root, "lecture")
	if err := os.Mkdir(lecture, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, lecture, files)
	return root, lecture
}

// ---------------------------------------------------------------------------
// TestRunConvert_Site - Full build
// ---------------------------------------------------------------------------

func TestRunConvert_Site(t *testing.T) {
	t.Parallel()

	root, lecture := lectureSite(t, map[string]string{
		"a.md": "# Intro\n\n[TOC]\n\n## Part\n",
		"b.md": "# Only\n",
	})
	env, stdout, _ := testEnv()

	if err := runConvertArgs(t, env, lecture, "--workers", "1"); err != nil {
		t.Fatalf("runConvert() error: %v", err)
	}

	t.Run("pages", func(t *testing.T) {
		a := readDoc(t, filepath.Join(lecture, "a.html"))
		if got := a.Find("title").Text(); got != "ZETIN::a" {
			t.Errorf("title = %q, want ZETIN::a", got)
		}
		if got := a.Find("h1").AttrOr("id", ""); got != "header-1" {
			t.Errorf("h1 id = %q, want header-1", got)
		}
		if got := a.Find("h2").AttrOr("id", ""); got != "header-2" {
			t.Errorf("h2 id = %q, want header-2", got)
		}
		if got := a.Find("ul.toc li").Length(); got != 2 {
			t.Errorf("toc items = %d, want 2", got)
		}
		if got := a.Find(`ul.toc a[href="#header-2"]`).Text(); got != "Part" {
			t.Errorf("toc link to header-2 = %q, want Part", got)
		}
		if !strings.Contains(a.Find("body").Text(), "Last updated: 2024-03-15 14:07:09") {
			t.Error("page missing update text")
		}

		b := readDoc(t, filepath.Join(lecture, "b.html"))
		if got := b.Find("h1").AttrOr("id", ""); got != "header-1" {
			t.Errorf("b.html h1 id = %q, want header-1 (numbering restarts per page)", got)
		}
		if b.Find("ul.toc").Length() != 0 {
			t.Error("b.html has no [TOC] marker and should have no toc")
		}
	})

	t.Run("index", func(t *testing.T) {
		index := readDoc(t, filepath.Join(root, "index.html"))
		links := index.Find("a.filename")
		if links.Length() != 2 {
			t.Fatalf("index links = %d, want 2", links.Length())
		}

		want := []struct{ href, text string }{
			{"lecture/a.html", "a"},
			{"lecture/b.html", "b"},
		}
		links.Each(func(i int, s *goquery.Selection) {
			if got := s.AttrOr("href", ""); got != want[i].href {
				t.Errorf("link %d href = %q, want %q", i, got, want[i].href)
			}
			if got := s.Text(); got != want[i].text {
				t.Errorf("link %d text = %q, want %q", i, got, want[i].text)
			}
		})
		if !strings.Contains(index.Find("li").First().Text(), "(Last updated: 2024-03-15 14:07:09)") {
			t.Errorf("index entry missing timestamp: %q", index.Find("li").First().Text())
		}
	})

	t.Run("summary", func(t *testing.T) {
		out := stdout.String()
		if !strings.Contains(out, "Created "+filepath.Join(lecture, "a.html")) {
			t.Errorf("stdout missing created line for a.html: %q", out)
		}
		if !strings.Contains(out, "HTML generated: 2 pages") {
			t.Errorf("stdout missing summary: %q", out)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert_Options - Flags shaping the output
// ---------------------------------------------------------------------------

func TestRunConvert_Options(t *testing.T) {
	t.Parallel()

	t.Run("page text and templates", func(t *testing.T) {
		t.Parallel()

		root, lecture := lectureSite(t, map[string]string{"intro.md": "# Hi\n"})
		env, stdout, _ := testEnv()
		indexPath := filepath.Join(root, "out", "toc.html")

		err := runConvertArgs(t, env, lecture,
			"--index", indexPath,
			"--page-template", "minimal",
			"--index-template", "minimal",
			"--title-prefix", "CS101::",
			"--update-label", "Updated ",
			"--date-format", "iso",
			"--quiet",
		)
		if err != nil {
			t.Fatalf("runConvert() error: %v", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("quiet mode should print nothing, got %q", stdout.String())
		}

		page := readDoc(t, filepath.Join(lecture, "intro.html"))
		if got := page.Find("title").Text(); got != "CS101::intro" {
			t.Errorf("title = %q, want CS101::intro", got)
		}
		if got := page.Find("p").First().Text(); got != "Updated 2024-03-15" {
			t.Errorf("update = %q, want Updated 2024-03-15", got)
		}

		index := readDoc(t, indexPath)
		if got := index.Find("a.filename").AttrOr("href", ""); got != "../lecture/intro.html" {
			t.Errorf("href = %q, want ../lecture/intro.html", got)
		}
	})

	t.Run("title is escaped", func(t *testing.T) {
		t.Parallel()

		_, lecture := lectureSite(t, map[string]string{"a.md": "text\n"})
		env, _, _ := testEnv()

		if err := runConvertArgs(t, env, lecture, "--title-prefix", "<b>&", "-q"); err != nil {
			t.Fatalf("runConvert() error: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(lecture, "a.html"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "<title>&lt;b&gt;&amp;a</title>") {
			t.Errorf("title not escaped in %q", data)
		}
	})

	t.Run("no-html omits raw html", func(t *testing.T) {
		t.Parallel()

		_, lecture := lectureSite(t, map[string]string{"a.md": "<div class=\"raw\">x</div>\n"})
		env, _, _ := testEnv()

		if err := runConvertArgs(t, env, lecture, "--no-html", "-q"); err != nil {
			t.Fatalf("runConvert() error: %v", err)
		}
		if readDoc(t, filepath.Join(lecture, "a.html")).Find("div.raw").Length() != 0 {
			t.Error("raw html should be omitted with --no-html")
		}
	})

	t.Run("config file", func(t *testing.T) {
		t.Parallel()

		_, lecture := lectureSite(t, map[string]string{"a.md": "# A\n"})
		cfgPath := filepath.Join(t.TempDir(), "site.yaml")
		cfgYAML := "page:\n  titlePrefix: \"FROM_FILE::\"\nhighlight:\n  style: monokai\n"
		if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
			t.Fatal(err)
		}
		env, _, _ := testEnv()

		if err := runConvertArgs(t, env, lecture, "--config", cfgPath, "-q"); err != nil {
			t.Fatalf("runConvert() error: %v", err)
		}
		if got := readDoc(t, filepath.Join(lecture, "a.html")).Find("title").Text(); got != "FROM_FILE::a" {
			t.Errorf("title = %q, want FROM_FILE::a", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert_EmptyDirectory - Index with no pages
// ---------------------------------------------------------------------------

func TestRunConvert_EmptyDirectory(t *testing.T) {
	t.Parallel()

	root, lecture := lectureSite(t, map[string]string{"notes.txt": "not markdown"})
	env, stdout, _ := testEnv()

	if err := runConvertArgs(t, env, lecture); err != nil {
		t.Fatalf("runConvert() error: %v", err)
	}

	index := readDoc(t, filepath.Join(root, "index.html"))
	if got := index.Find("li").Length(); got != 0 {
		t.Errorf("index items = %d, want 0", got)
	}
	if !strings.Contains(stdout.String(), "HTML generated: 0 pages") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_Failures - Strict and keep-going modes
// ---------------------------------------------------------------------------

// blockPage puts a non-empty directory where the page for name would be
// written, so writing it fails.
func blockPage(t *testing.T, lecture, name string) {
	t.Helper()
	writeFiles(t, lecture, map[string]string{filepath.Join(name+".html", "keep"): ""})
}

func TestRunConvert_Failures(t *testing.T) {
	t.Parallel()

	t.Run("strict mode aborts without index", func(t *testing.T) {
		t.Parallel()

		root, lecture := lectureSite(t, map[string]string{"a.md": "# A\n", "b.md": "# B\n"})
		blockPage(t, lecture, "a")
		env, _, _ := testEnv()

		err := runConvertArgs(t, env, lecture, "--workers", "1")
		if !errors.Is(err, md2html.ErrWriteHTML) {
			t.Fatalf("expected ErrWriteHTML, got %v", err)
		}
		if exitCodeFor(err) != ExitIO {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitIO)
		}
		if _, statErr := os.Stat(filepath.Join(root, "index.html")); !os.IsNotExist(statErr) {
			t.Error("index should not be written after an abort")
		}
	})

	t.Run("keep going writes partial index", func(t *testing.T) {
		t.Parallel()

		root, lecture := lectureSite(t, map[string]string{"a.md": "# A\n", "b.md": "# B\n"})
		blockPage(t, lecture, "a")
		env, _, stderr := testEnv()

		err := runConvertArgs(t, env, lecture, "--keep-going", "--workers", "1")
		if !errors.Is(err, md2html.ErrPartialBatch) {
			t.Fatalf("expected ErrPartialBatch, got %v", err)
		}
		if exitCodeFor(err) != ExitGeneral {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitGeneral)
		}
		if !strings.Contains(stderr.String(), "FAILED "+filepath.Join(lecture, "a.md")) {
			t.Errorf("stderr missing failure line: %q", stderr.String())
		}

		links := readDoc(t, filepath.Join(root, "index.html")).Find("a.filename")
		if links.Length() != 1 || links.AttrOr("href", "") != "lecture/b.html" {
			t.Errorf("index should list only b.html, got %d links", links.Length())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert_Errors - Setup failures and exit codes
// ---------------------------------------------------------------------------

func TestRunConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		wantErr  error
		wantCode int
	}{
		{
			name:     "missing directory",
			args:     func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "missing")} },
			wantErr:  md2html.ErrNoInput,
			wantCode: ExitIO,
		},
		{
			name: "unknown highlight style",
			args: func(t *testing.T) []string {
				return []string{t.TempDir(), "--highlight-style", "no-such-style"}
			},
			wantErr:  config.ErrInvalidHighlightStyle,
			wantCode: ExitUsage,
		},
		{
			name: "bad date format",
			args: func(t *testing.T) []string {
				return []string{t.TempDir(), "--date-format", "[unclosed"}
			},
			wantCode: ExitUsage,
		},
		{
			name: "missing template",
			args: func(t *testing.T) []string {
				return []string{t.TempDir(), "--page-template", "nonexistent"}
			},
			wantErr:  md2html.ErrLoadTemplate,
			wantCode: ExitUsage,
		},
		{
			name:     "negative workers",
			args:     func(t *testing.T) []string { return []string{t.TempDir(), "--workers", "-1"} },
			wantErr:  ErrInvalidWorkerCount,
			wantCode: ExitUsage,
		},
		{
			name: "missing config",
			args: func(t *testing.T) []string {
				return []string{t.TempDir(), "--config", filepath.Join(t.TempDir(), "none.yaml")}
			},
			wantErr:  config.ErrConfigNotFound,
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv()
			err := runConvertArgs(t, env, tt.args(t)...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if got := exitCodeFor(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Flag precedence
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Page.TitlePrefix = "FROM_FILE::"
	cfg.Batch.Workers = 3

	flags, _, err := parseConvertFlags([]string{"--update-label", "Edited ", "--no-html", "-k", "--highlight-classes"})
	if err != nil {
		t.Fatal(err)
	}
	mergeFlags(flags, cfg)

	if cfg.Page.TitlePrefix != "FROM_FILE::" {
		t.Errorf("unset flag overrode TitlePrefix: %q", cfg.Page.TitlePrefix)
	}
	if cfg.Page.UpdateLabel != "Edited " {
		t.Errorf("UpdateLabel = %q, want \"Edited \"", cfg.Page.UpdateLabel)
	}
	if cfg.Markdown.AllowHTML {
		t.Error("--no-html should disable AllowHTML")
	}
	if !cfg.Batch.KeepGoing {
		t.Error("-k should enable KeepGoing")
	}
	if !cfg.Highlight.Classes {
		t.Error("--highlight-classes should enable Classes")
	}
	if cfg.Batch.Workers != 3 {
		t.Errorf("Workers = %d, want 3 (flag unset)", cfg.Batch.Workers)
	}
}
