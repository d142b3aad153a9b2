package pipeline

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"
)

// IndexEntry describes one generated page in the index listing.
type IndexEntry struct {
	Name    string // page base name without extension
	Link    string // href relative to the index page
	Updated string // label and timestamp shown after the link
}

// RenderIndexList renders entries as concatenated list items, in the given order:
//
//	<li><a class="filename" href="lecture/a.html">a</a> (Last updated: 2024-03-15 10:30:00)</li>
func RenderIndexList(entries []IndexEntry) string {
	var buf strings.Builder
	for _, e := range entries {
		buf.WriteString(`<li><a class="filename" href="`)
		buf.WriteString(html.EscapeString(e.Link))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(e.Name))
		buf.WriteString(`</a> (`)
		buf.WriteString(html.EscapeString(e.Updated))
		buf.WriteString(`)</li>`)
	}
	return buf.String()
}

// AssembleIndex fills the first [LIST] of template with the rendered entries.
func AssembleIndex(template string, entries []IndexEntry) string {
	return ReplaceFirst(template, Substitution{PlaceholderList, RenderIndexList(entries)})
}

// RelativeLink returns the href of pagePath as seen from the directory of
// indexPath, always with forward slashes.
func RelativeLink(indexPath, pagePath string) (string, error) {
	absIndex, err := filepath.Abs(indexPath)
	if err != nil {
		return "", fmt.Errorf("resolving index path: %w", err)
	}
	absPage, err := filepath.Abs(pagePath)
	if err != nil {
		return "", fmt.Errorf("resolving page path: %w", err)
	}
	rel, err := filepath.Rel(filepath.Dir(absIndex), absPage)
	if err != nil {
		return "", fmt.Errorf("relative link: %w", err)
	}
	return filepath.ToSlash(rel), nil
}
