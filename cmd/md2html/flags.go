package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// templateFlags holds template selection flags.
type templateFlags struct {
	page      string // set name or file path
	index     string // set name or file path
	assetPath string // directory searched for named sets
}

// pageTextFlags holds the text substituted into pages.
type pageTextFlags struct {
	titlePrefix string
	updateLabel string
	dateFormat  string
}

// highlightFlags holds fenced code highlighting flags.
type highlightFlags struct {
	style   string
	classes bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	index     string
	workers   int
	keepGoing bool
	noHTML    bool
	templates templateFlags
	page      pageTextFlags
	highlight highlightFlags
}

// addConfigFlag adds --config, the one flag every config-reading command takes.
func addConfigFlag(fs *flag.FlagSet, p *string) {
	fs.StringVarP(p, "config", "c", "", "config file name or path")
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	addConfigFlag(fs, &f.config)
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details")
}

// addTemplateFlags adds template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVar(&f.page, "page-template", "", "page template name or file path")
	fs.StringVar(&f.index, "index-template", "", "index template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom template sets")
}

// addPageTextFlags adds page text flags to a FlagSet.
func addPageTextFlags(fs *flag.FlagSet, f *pageTextFlags) {
	fs.StringVar(&f.titlePrefix, "title-prefix", "", "text before the page name in [TITLE]")
	fs.StringVar(&f.updateLabel, "update-label", "", "text before the timestamp in [UPDATE]")
	fs.StringVar(&f.dateFormat, "date-format", "", "timestamp format or preset: iso, datetime, european, us, long, rfc3339")
}

// addHighlightFlags adds highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVar(&f.style, "highlight-style", "", "chroma style for code blocks")
	fs.BoolVar(&f.classes, "highlight-classes", false, "emit CSS classes instead of inline styles")
}

// registerConvertFlags registers every convert flag on fs.
// Shared by parsing and completion so both see the same set.
func registerConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.index, "index", "i", "", "index page path (default: index.html next to the input directory)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.keepGoing, "keep-going", "k", false, "write the index from successful pages when some fail")
	fs.BoolVar(&f.noHTML, "no-html", false, "omit raw HTML in markdown")

	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.templates)
	addPageTextFlags(fs, &f.page)
	addHighlightFlags(fs, &f.highlight)
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}
	registerConvertFlags(fs, f)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	style string
	list  bool
}

// registerCSSFlags registers css command flags on fs.
func registerCSSFlags(fs *flag.FlagSet, f *cssFlags) {
	fs.StringVarP(&f.style, "style", "s", "", "chroma style (default: highlight.style from config, or github)")
	fs.BoolVarP(&f.list, "list", "l", false, "list available styles")
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string) (*cssFlags, *commonFlags, error) {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	f := &cssFlags{}
	common := &commonFlags{}
	registerCSSFlags(fs, f)
	addConfigFlag(fs, &common.config)

	fs.Usage = func() { printCSSUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, common, nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	f := &commonFlags{}
	addConfigFlag(fs, &f.config)

	fs.Usage = func() { printConfigUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
