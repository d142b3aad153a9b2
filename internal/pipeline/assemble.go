package pipeline

import (
	"sort"
	"strings"
)

// Placeholders recognized in markdown sources and templates.
const (
	PlaceholderTOC    = "[TOC]"
	PlaceholderBody   = "[BODY]"
	PlaceholderTitle  = "[TITLE]"
	PlaceholderUpdate = "[UPDATE]"
	PlaceholderList   = "[LIST]"
)

// Substitution pairs a placeholder with its replacement.
type Substitution struct {
	Placeholder string
	Value       string
}

// PageData holds the values substituted into a page template.
type PageData struct {
	Body    string // rendered document HTML, TOC already inserted
	Title   string // [TITLE]
	Updated string // [UPDATE]
}

// InsertTOC replaces the first [TOC] in body with tocHTML.
// Without a marker the body is returned unchanged.
func InsertTOC(body, tocHTML string) string {
	return ReplaceFirst(body, Substitution{PlaceholderTOC, tocHTML})
}

// AssemblePage fills the first [BODY], [TITLE] and [UPDATE] of template.
func AssemblePage(template string, data PageData) string {
	return ReplaceFirst(template,
		Substitution{PlaceholderBody, data.Body},
		Substitution{PlaceholderTitle, data.Title},
		Substitution{PlaceholderUpdate, data.Updated},
	)
}

// ReplaceFirst replaces the first occurrence of each placeholder in s.
// All positions are located in s before any value is spliced in, so a value
// that itself contains a placeholder is copied verbatim and the result does
// not depend on the order of subs. Later occurrences are left untouched;
// absent placeholders are skipped.
func ReplaceFirst(s string, subs ...Substitution) string {
	type match struct {
		start, end int
		value      string
	}

	matches := make([]match, 0, len(subs))
	for _, sub := range subs {
		if sub.Placeholder == "" {
			continue
		}
		if i := strings.Index(s, sub.Placeholder); i >= 0 {
			matches = append(matches, match{i, i + len(sub.Placeholder), sub.Value})
		}
	}
	if len(matches) == 0 {
		return s
	}
	sort.Slice(matches, func(a, b int) bool { return matches[a].start < matches[b].start })

	var buf strings.Builder
	buf.Grow(len(s))
	last := 0
	for _, m := range matches {
		// Overlapping placeholders: first by position wins.
		if m.start < last {
			continue
		}
		buf.WriteString(s[last:m.start])
		buf.WriteString(m.value)
		last = m.end
	}
	buf.WriteString(s[last:])
	return buf.String()
}

// MissingPlaceholders returns the placeholders of required absent from template.
func MissingPlaceholders(template string, required ...string) []string {
	var missing []string
	for _, p := range required {
		if !strings.Contains(template, p) {
			missing = append(missing, p)
		}
	}
	return missing
}
