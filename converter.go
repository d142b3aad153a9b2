package md2html

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.InlineRenderer       = (*pipeline.Engine)(nil)
)

// Converter turns markdown documents into complete HTML pages and assembles
// the index page listing them. Create with NewConverter. A Converter holds no
// per-document state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	resolver      *assets.AssetResolver
	preprocessor  pipeline.MarkdownPreprocessor
	engine        *pipeline.Engine
	pageTemplate  string
	indexTemplate string
	layout        string // Go time layout derived from cfg.timestampFormat
}

// NewConverter creates a Converter. Templates are loaded once here.
// Returns error if the highlight style or timestamp format is invalid, or if
// a template cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          defaultConfig(),
		preprocessor: &pipeline.SourcePreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Empty values mean defaults, as in a config file with blank keys
	if c.cfg.highlightStyle == "" {
		c.cfg.highlightStyle = pipeline.DefaultHighlightStyle
	}
	if c.cfg.timestampFormat == "" {
		c.cfg.timestampFormat = dateutil.DefaultDateFormat
	}

	if !config.IsHighlightStyle(c.cfg.highlightStyle) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, c.cfg.highlightStyle)
	}

	layout, err := dateutil.ParseDateFormat(c.cfg.timestampFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	c.layout = layout

	c.resolver, err = assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	c.pageTemplate, err = c.resolver.LoadTemplate(c.cfg.pageTemplate, assets.KindPage)
	if err != nil {
		return nil, fmt.Errorf("%w: page %q: %w", ErrLoadTemplate, c.cfg.pageTemplate, err)
	}
	c.indexTemplate, err = c.resolver.LoadTemplate(c.cfg.indexTemplate, assets.KindIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: index %q: %w", ErrLoadTemplate, c.cfg.indexTemplate, err)
	}

	c.engine = pipeline.NewEngine(pipeline.EngineOptions{
		HighlightStyle:   c.cfg.highlightStyle,
		HighlightClasses: c.cfg.highlightClasses,
		AllowHTML:        c.cfg.allowHTML,
	})

	return c, nil
}

// Convert renders one markdown document into a complete page.
// The context is checked between stages. Recovers from internal panics to
// prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	source := []byte(c.preprocessor.PreprocessMarkdown(ctx, input.Markdown))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Headings get their ids before rendering so the body carries them.
	doc := c.engine.Parse(source)
	toc := pipeline.IndexHeadings(doc, source, c.engine)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var body bytes.Buffer
	if err := c.engine.Render(&body, source, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderHTML, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	generatedAt := c.cfg.clock()
	page := pipeline.AssemblePage(c.pageTemplate, pipeline.PageData{
		Body:    pipeline.InsertTOC(body.String(), pipeline.RenderTOC(toc)),
		Title:   html.EscapeString(c.Title(input.Name)),
		Updated: html.EscapeString(c.UpdateText(generatedAt)),
	})

	return &ConvertResult{
		HTML:        []byte(page),
		TOC:         toc,
		GeneratedAt: generatedAt,
	}, nil
}

// Title returns the [TITLE] text for a source name: the title prefix
// followed by the base name without extension.
func (c *Converter) Title(name string) string {
	return c.cfg.titlePrefix + PageTitle(name)
}

// UpdateText returns the update label followed by t in the configured format.
func (c *Converter) UpdateText(t time.Time) string {
	return c.cfg.updateLabel + t.Format(c.layout)
}

// IndexEntry builds the listing entry for a page generated at t.
// link is the href of the page relative to the index file.
func (c *Converter) IndexEntry(name, link string, t time.Time) IndexEntry {
	return IndexEntry{
		Name:    PageTitle(name),
		Link:    link,
		Updated: c.UpdateText(t),
	}
}

// RenderIndex fills the index template with entries, in the given order.
func (c *Converter) RenderIndex(entries []IndexEntry) []byte {
	return []byte(pipeline.AssembleIndex(c.indexTemplate, entries))
}

// MissingPagePlaceholders lists the page placeholders absent from the
// page template. Their values are silently dropped.
func (c *Converter) MissingPagePlaceholders() []string {
	return pipeline.MissingPlaceholders(c.pageTemplate, assets.KindPage.Placeholders()...)
}

// MissingIndexPlaceholders lists the index placeholders absent from the
// index template.
func (c *Converter) MissingIndexPlaceholders() []string {
	return pipeline.MissingPlaceholders(c.indexTemplate, assets.KindIndex.Placeholders()...)
}

// TemplateNames lists the template sets available by name.
func (c *Converter) TemplateNames() []string {
	return c.resolver.Names()
}

// HighlightCSS writes the stylesheet matching class-based highlighting in
// the given chroma style.
func HighlightCSS(w io.Writer, style string) error {
	if !config.IsHighlightStyle(style) {
		return fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, style)
	}
	return pipeline.HighlightCSS(w, style)
}

// HighlightStyles lists the available chroma style names.
func HighlightStyles() []string {
	return config.HighlightStyles()
}
