package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		// single tokens
		{format: "YYYY", want: "2006"},
		{format: "YY", want: "06"},
		{format: "MMMM", want: "January"},
		{format: "MMM", want: "Jan"},
		{format: "MM", want: "01"},
		{format: "M", want: "1"},
		{format: "DD", want: "02"},
		{format: "D", want: "2"},
		{format: "dddd ddd", want: "Monday Mon"},
		{format: "HH", want: "15"},
		{format: "hh:mm A", want: "03:04 PM"},
		{format: "h", want: "3"},
		{format: "ssZ", want: "05Z07:00"},

		// case decides month versus minute
		{format: "MM mm", want: "01 04"},

		// combined layouts
		{format: DefaultDateFormat, want: "2006-01-02 15:04:05"},
		{format: "DD/MM/YYYY", want: "02/01/2006"},
		{format: "MMMM D, YYYY", want: "January 2, 2006"},
		{format: "(YYYY-MM-DD)", want: "(2006-01-02)"},
		{format: "---", want: "---"},

		// presets, any case
		{format: "iso", want: "2006-01-02"},
		{format: "DateTime", want: "2006-01-02 15:04:05"},
		{format: "RFC3339", want: "2006-01-02T15:04:05Z07:00"},

		// bare words collide with tokens; brackets keep them literal
		{format: "Date: YYYY", want: "2ate: 2006"},
		{format: "[Date]: YYYY", want: "Date: 2006"},
		{format: "[YYYY]-MM-DD", want: "YYYY-01-02"},
		{format: "[Day]: D [Month]: M", want: "Day: 2 Month: 1"},
		{format: "YYYY[]MM", want: "200601"},
		{format: "[a[b]c", want: "a[bc"},

		// rejects
		{format: "", wantErr: true},
		{format: "[Date YYYY", wantErr: true},
		{format: "YYYY [", wantErr: true},
		{format: strings.Repeat("-", MaxDateFormatLength+1), wantErr: true},
		{format: strings.Repeat("-", MaxDateFormatLength), want: strings.Repeat("-", MaxDateFormatLength)},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("ParseDateFormat(%q) error = %v, want ErrInvalidDateFormat", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseDateFormat_UnclosedBracketPosition(t *testing.T) {
	t.Parallel()

	_, err := ParseDateFormat("YYYY [at")
	if err == nil || !strings.Contains(err.Error(), "position 5") {
		t.Errorf("error = %v, want position 5", err)
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	build := time.Date(2024, 3, 15, 14, 7, 9, 0, time.UTC)

	tests := map[string]string{
		"":                 "2024-03-15 14:07:09",
		"DD/MM/YYYY HH:mm": "15/03/2024 14:07",
		"iso":              "2024-03-15",
		"datetime":         "2024-03-15 14:07:09",
		"european":         "15/03/2024 14:07",
		"us":               "03/15/2024 02:07 PM",
		"long":             "Friday, March 15, 2024 14:07",
		"rfc3339":          "2024-03-15T14:07:09Z",
		"[at] HH:mm":       "at 14:07",
	}

	for format, want := range tests {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			got, err := FormatTimestamp(format, build)
			if err != nil {
				t.Fatalf("FormatTimestamp(%q) unexpected error: %v", format, err)
			}
			if got != want {
				t.Errorf("FormatTimestamp(%q) = %q, want %q", format, got, want)
			}
		})
	}

	if _, err := FormatTimestamp("[at HH:mm", build); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("FormatTimestamp(unclosed) error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestDatePresetsAreValid(t *testing.T) {
	t.Parallel()

	for name, layout := range DatePresets {
		if _, err := ParseDateFormat(layout); err != nil {
			t.Errorf("preset %q (%q) does not parse: %v", name, layout, err)
		}
	}
}
