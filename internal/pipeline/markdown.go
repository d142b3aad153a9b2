package pipeline

import (
	"bytes"
	"io"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// EngineOptions configures the markdown engine.
type EngineOptions struct {
	HighlightStyle   string // chroma style name (default: github)
	HighlightClasses bool   // CSS classes instead of inline styles
	AllowHTML        bool   // Pass raw HTML through instead of omitting it
}

// Engine parses markdown into a goldmark AST and renders it back to HTML.
// A single Engine is safe for concurrent use; each Parse returns a fresh AST
// owned by the caller.
type Engine struct {
	md goldmark.Markdown
}

// NewEngine creates an Engine with tables, strikethrough and fenced code
// highlighting. Links are not auto-detected and punctuation is left as typed.
func NewEngine(opts EngineOptions) *Engine {
	style := opts.HighlightStyle
	if style == "" {
		style = DefaultHighlightStyle
	}

	var rendererOpts []goldmark.Option
	if opts.AllowHTML {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			highlighting.NewHighlighting(
				highlighting.WithStyle(strings.ToLower(style)),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(opts.HighlightClasses),
				),
			),
		),
	}, rendererOpts...)...)

	return &Engine{md: md}
}

// Parse builds the AST of source. Parsing never fails: malformed markdown
// is rendered as text.
func (e *Engine) Parse(source []byte) ast.Node {
	return e.md.Parser().Parse(text.NewReader(source))
}

// Render writes the HTML of doc, honoring attributes set on its nodes.
func (e *Engine) Render(w io.Writer, source []byte, doc ast.Node) error {
	return e.md.Renderer().Render(w, source, doc)
}

// RenderInline renders the inline children of n without a block wrapper.
// Formatting and escaping match what Render produces inside the block.
func (e *Engine) RenderInline(source []byte, n ast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		_ = e.md.Renderer().Render(&buf, source, c) // writes to a bytes.Buffer cannot fail
	}
	return buf.String()
}

// HighlightCSS writes the stylesheet for class-based highlighting in style.
// Unknown styles fall back to chroma's default.
func HighlightCSS(w io.Writer, style string) error {
	if style == "" {
		style = DefaultHighlightStyle
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.WriteCSS(w, styles.Get(strings.ToLower(style)))
}
