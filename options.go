package md2html

import (
	"time"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Default page text.
const (
	DefaultTitlePrefix = "ZETIN::"
	DefaultUpdateLabel = "Last updated: "
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings collected from options.
type converterConfig struct {
	pageTemplate     string // set name or file path
	indexTemplate    string // set name or file path
	assetPath        string
	titlePrefix      string
	updateLabel      string
	timestampFormat  string
	highlightStyle   string
	highlightClasses bool
	allowHTML        bool
	clock            func() time.Time
}

func defaultConfig() converterConfig {
	return converterConfig{
		pageTemplate:    assets.DefaultTemplateSetName,
		indexTemplate:   assets.DefaultTemplateSetName,
		titlePrefix:     DefaultTitlePrefix,
		updateLabel:     DefaultUpdateLabel,
		timestampFormat: dateutil.DefaultDateFormat,
		highlightStyle:  pipeline.DefaultHighlightStyle,
		allowHTML:       true,
		clock:           time.Now,
	}
}

// WithPageTemplate selects the page template by set name ("default",
// "minimal") or by file path. The template should contain [BODY], [TITLE]
// and [UPDATE].
func WithPageTemplate(ref string) Option {
	return func(c *Converter) {
		c.cfg.pageTemplate = ref
	}
}

// WithIndexTemplate selects the index template by set name or file path.
// The template should contain [LIST].
func WithIndexTemplate(ref string) Option {
	return func(c *Converter) {
		c.cfg.indexTemplate = ref
	}
}

// WithAssetPath adds a directory searched for named template sets
// (templates/{name}/page.html, templates/{name}/index.html) before the
// embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithTitlePrefix sets the text placed before the page name in [TITLE].
func WithTitlePrefix(prefix string) Option {
	return func(c *Converter) {
		c.cfg.titlePrefix = prefix
	}
}

// WithUpdateLabel sets the text placed before the timestamp in [UPDATE]
// and in index list items.
func WithUpdateLabel(label string) Option {
	return func(c *Converter) {
		c.cfg.updateLabel = label
	}
}

// WithTimestampFormat sets the generation timestamp layout, using tokens
// like "YYYY-MM-DD HH:mm" or a preset name ("iso", "european", "long").
func WithTimestampFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.timestampFormat = format
	}
}

// WithHighlightStyle sets the chroma style for fenced code blocks.
func WithHighlightStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}

// WithHighlightClasses emits CSS classes for highlighted code instead of
// inline styles. Pair with the stylesheet from HighlightCSS.
func WithHighlightClasses(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.highlightClasses = enabled
	}
}

// WithAllowHTML controls whether raw HTML in markdown is passed through.
// Enabled by default.
func WithAllowHTML(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.allowHTML = enabled
	}
}

// WithClock sets the time source for generation timestamps.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("md2html: WithClock requires a non-nil function")
	}
	return func(c *Converter) {
		c.cfg.clock = now
	}
}
