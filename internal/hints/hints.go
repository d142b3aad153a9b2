// Package hints builds the "hint:" lines the CLI appends to error messages.
// Every function returns either "" or a string starting with a newline, so
// callers can concatenate unconditionally.
package hints

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ForInputDir returns hints for a missing or unusable input directory.
// When dir is a markdown file, suggests its parent directory instead.
func ForInputDir(dir string) string {
	if fileutil.FileExists(dir) && strings.EqualFold(filepath.Ext(dir), ".md") {
		return format("pass the directory containing the file: " + filepath.Dir(dir))
	}
	return format("pass a directory of .md files, or set input.dir in the config file")
}

// ForConfigNotFound points at --config, and at the per-user location among
// searchedPaths when there is one.
func ForConfigNotFound(searchedPaths []string) string {
	i := slices.IndexFunc(searchedPaths, func(p string) bool {
		return strings.Contains(filepath.ToSlash(p), "/go-md2html/")
	})
	if i < 0 {
		return format("use --config /path/to/file.yaml")
	}
	return format("use --config /path/to/file.yaml or create " + searchedPaths[i])
}

// ForOutputDirectory is appended to page and index write failures.
func ForOutputDirectory() string {
	return format("check the output directory exists and is writable")
}

// ForHighlightStyle returns hints for unknown highlight style errors.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplateNotFound returns hints for template lookup errors.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("use a path to an HTML file")
	}
	return format("use a path to an HTML file or one of: " + strings.Join(available, ", "))
}

// ForMissingPlaceholders returns a hint listing placeholders a template lacks.
func ForMissingPlaceholders(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return format("add " + strings.Join(missing, ", ") + " to the template or the value is dropped")
}

// format prefixes a non-empty hint with the newline and indent.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
