package main

import (
	"fmt"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/logger"
)

// runCSS prints the stylesheet for class-based highlighting, or the list
// of available styles.
func runCSS(args []string, env *Environment) error {
	flags, common, err := parseCSSFlags(args)
	if err != nil {
		return usageError(err)
	}

	if flags.list {
		for _, name := range md2html.HighlightStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	style := flags.style
	if style == "" {
		cfg, err := loadConfig(common.config, loadEnvConfig(), logger.Discard())
		if err != nil {
			return err
		}
		style = cfg.Highlight.Style
	}

	if err := md2html.HighlightCSS(env.Stdout, style); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForHighlightStyle(config.HighlightStyles()))
	}
	return nil
}
