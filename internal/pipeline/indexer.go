package pipeline

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// HeadingIDPrefix prefixes the sequential heading identifiers.
const HeadingIDPrefix = "header-"

// InlineRenderer renders the inline children of a node to HTML.
type InlineRenderer interface {
	RenderInline(source []byte, n ast.Node) string
}

// TOCEntry describes one heading of a document.
type TOCEntry struct {
	Level   int    // 1-6
	Content string // rendered inline HTML of the heading text
	ID      string // header-N, unique within the document
}

// Tag returns the heading element name, e.g. "h2".
func (e TOCEntry) Tag() string {
	return "h" + strconv.Itoa(e.Level)
}

// TableOfContents lists the headings of a document in order of appearance.
type TableOfContents []TOCEntry

// IndexHeadings assigns header-1, header-2, ... to every heading of doc in
// document order, setting each as the heading's id attribute, and returns the
// matching table of contents. Numbering restarts at 1 on every call.
func IndexHeadings(doc ast.Node, source []byte, inline InlineRenderer) TableOfContents {
	var toc TableOfContents
	counter := 1

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		id := HeadingIDPrefix + strconv.Itoa(counter)
		heading.SetAttributeString("id", []byte(id))
		toc = append(toc, TOCEntry{
			Level:   heading.Level,
			Content: inline.RenderInline(source, heading),
			ID:      id,
		})
		counter++

		// Headings hold only inline content.
		return ast.WalkSkipChildren, nil
	})

	return toc
}
