package md2html

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// MaxMarkdownSize bounds a single input document (16 MiB).
const MaxMarkdownSize = 16 << 20

// maxNameLength matches NAME_MAX on common filesystems.
const maxNameLength = 255

// Input contains conversion parameters.
type Input struct {
	Name     string // Source file name or path; its base name without extension becomes the title
	Markdown string // Markdown content (may be empty)
}

// Validate checks that the input can be converted.
// An empty document is valid and yields a page with an empty body.
func (in Input) Validate() error {
	if len(in.Markdown) > MaxMarkdownSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrMarkdownTooLarge, len(in.Markdown), MaxMarkdownSize)
	}
	base := filepath.Base(in.Name)
	if len(base) > maxNameLength {
		return fmt.Errorf("%w: base name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	if strings.ContainsRune(in.Name, 0) {
		return fmt.Errorf("%w: contains null byte", ErrInvalidName)
	}
	return nil
}

// TOCEntry is one heading of a converted document.
type TOCEntry = pipeline.TOCEntry

// IndexEntry is one item of the index page listing.
type IndexEntry = pipeline.IndexEntry

// ConvertResult holds the output of a single conversion.
type ConvertResult struct {
	HTML        []byte     // Complete page
	TOC         []TOCEntry // Headings in document order
	GeneratedAt time.Time  // Timestamp substituted for [UPDATE]
}

// PageTitle returns the base name of name with its extension removed.
//
//	PageTitle("notes/a.md") == "a"
//	PageTitle("archive.tar.md") == "archive.tar"
func PageTitle(name string) string {
	if name == "" {
		return ""
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
