// Package dateutil converts user-friendly timestamp layouts to Go time formats.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned for empty, oversized, or unbalanced layouts.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is the layout used for page and index timestamps.
const DefaultDateFormat = "YYYY-MM-DD HH:mm:ss"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching. Matching is case-sensitive:
// MM is the month, mm the minute.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
	{"h", "3"},
	{"A", "PM"},
	{"Z", "Z07:00"},
}

// DatePresets provides named shortcuts for common layouts.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"datetime": DefaultDateFormat,
	"european": "DD/MM/YYYY HH:mm",
	"us":       "MM/DD/YYYY hh:mm A",
	"long":     "dddd, MMMM D, YYYY HH:mm",
	"rfc3339":  "YYYY-MM-DD[T]HH:mm:ssZ",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY YY MMMM MMM MM M DD D dddd ddd HH hh h mm ss A Z.
// Brackets escape literal text: [at] preserves "at" literally.
// A preset name (see DatePresets) is expanded first.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}

	return translate(format)
}

// translate rewrites tokens left to right, longest token first. Bracketed
// text and unknown characters pass through.
func translate(format string) (string, error) {
	var out strings.Builder
	out.Grow(len(format) + 10)

	for rest := format; rest != ""; {
		if lit, ok := strings.CutPrefix(rest, "["); ok {
			text, after, closed := strings.Cut(lit, "]")
			if !closed {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			out.WriteString(text)
			rest = after
			continue
		}

		width, layout := 1, rest[:1]
		for _, t := range dateTokens {
			if strings.HasPrefix(rest, t.token) {
				width, layout = len(t.token), t.goFmt
				break
			}
		}
		out.WriteString(layout)
		rest = rest[width:]
	}

	return out.String(), nil
}

// FormatTimestamp renders t with a user-friendly layout or preset name.
// An empty format falls back to DefaultDateFormat.
func FormatTimestamp(format string, t time.Time) (string, error) {
	if format == "" {
		format = DefaultDateFormat
	}
	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
