package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/logger"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// runConvert orchestrates a site build: discover, convert in parallel,
// write the index.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	log := logger.NewWithLevel(env.Stderr, logger.LevelFor(flags.common.verbose, flags.common.quiet))
	warnUnknownEnvVars(log)

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg, log)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return withConfigHint(err)
	}

	inputDir, err := resolveInputDir(positionalArgs, cfg)
	if err != nil {
		return err
	}
	indexPath := resolveIndexPath(inputDir, cfg)

	conv, err := newConverter(cfg, env.clock())
	if err != nil {
		return err
	}
	log.MissingPlaceholders(assets.KindPage.String(), conv.MissingPagePlaceholders())
	log.MissingPlaceholders(assets.KindIndex.String(), conv.MissingIndexPlaceholders())

	files, err := discoverFiles(inputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	workers := resolveWorkers(cfg.Batch.Workers)
	log.BatchStarted(inputDir, len(files), workers)

	completed, failed, err := convertBatch(ctx, conv, files, batchOptions{
		workers:   workers,
		keepGoing: cfg.Batch.KeepGoing,
		log:       log,
	})
	if err != nil {
		// Strict mode or interrupted: pages already written stay, no index.
		return err
	}

	if err := writeIndex(conv, indexPath, completed); err != nil {
		return err
	}
	log.IndexWritten(indexPath, len(completed))

	printResults(env, completed, failed, indexPath, flags.common.quiet)

	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d", md2html.ErrPartialBatch, len(failed), len(files))
	}
	return nil
}

// loadConfig builds the effective configuration from defaults, the config
// file (flag, then MD2HTML_CONFIG) and environment variables.
func loadConfig(flagConfig string, envCfg *envConfig, log *logger.Logger) (*config.Config, error) {
	cfg := config.DefaultConfig()

	source := flagConfig
	if source == "" {
		source = envCfg.ConfigPath
	}
	if source != "" {
		loaded, err := config.LoadConfig(source)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(source) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(source)))
			}
			return nil, fmt.Errorf("loading config: %w", withConfigHint(err))
		}
		cfg = loaded
		log.ConfigLoaded(source)
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// withConfigHint appends an actionable hint to validation errors that have one.
func withConfigHint(err error) error {
	if errors.Is(err, config.ErrInvalidHighlightStyle) {
		return fmt.Errorf("%w%s", err, hints.ForHighlightStyle(config.HighlightStyles()))
	}
	return err
}

// mergeFlags applies CLI flags to config. Only set flags override.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	setIf(&cfg.Output.Index, flags.index)
	setIf(&cfg.Templates.Page, flags.templates.page)
	setIf(&cfg.Templates.Index, flags.templates.index)
	setIf(&cfg.Templates.BasePath, flags.templates.assetPath)
	setIf(&cfg.Page.TitlePrefix, flags.page.titlePrefix)
	setIf(&cfg.Page.UpdateLabel, flags.page.updateLabel)
	setIf(&cfg.Page.DateFormat, flags.page.dateFormat)
	setIf(&cfg.Highlight.Style, flags.highlight.style)

	if flags.highlight.classes {
		cfg.Highlight.Classes = true
	}
	if flags.noHTML {
		cfg.Markdown.AllowHTML = false
	}
	if flags.workers > 0 {
		cfg.Batch.Workers = flags.workers
	}
	if flags.keepGoing {
		cfg.Batch.KeepGoing = true
	}
}

// newConverter creates the library converter from the effective config.
func newConverter(cfg *config.Config, now func() time.Time) (*md2html.Converter, error) {
	conv, err := md2html.NewConverter(
		md2html.WithPageTemplate(cfg.Templates.Page),
		md2html.WithIndexTemplate(cfg.Templates.Index),
		md2html.WithAssetPath(cfg.Templates.BasePath),
		md2html.WithTitlePrefix(cfg.Page.TitlePrefix),
		md2html.WithUpdateLabel(cfg.Page.UpdateLabel),
		md2html.WithTimestampFormat(cfg.Page.DateFormat),
		md2html.WithHighlightStyle(cfg.Highlight.Style),
		md2html.WithHighlightClasses(cfg.Highlight.Classes),
		md2html.WithAllowHTML(cfg.Markdown.AllowHTML),
		md2html.WithClock(now),
	)
	if err != nil {
		if errors.Is(err, md2html.ErrLoadTemplate) {
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(templateNames(cfg.Templates.BasePath)))
		}
		return nil, withConfigHint(err)
	}
	return conv, nil
}

// templateNames lists the named template sets, custom ones included when
// basePath is usable.
func templateNames(basePath string) []string {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return assets.NewEmbeddedLoader().Names()
	}
	return resolver.Names()
}

// writeIndex renders the index listing for completed pages, in completion
// order, and writes it to indexPath.
func writeIndex(conv *md2html.Converter, indexPath string, completed []ConversionResult) error {
	entries := make([]md2html.IndexEntry, 0, len(completed))
	for _, r := range completed {
		link, err := pipeline.RelativeLink(indexPath, r.OutputPath)
		if err != nil {
			return fmt.Errorf("%w: %v", md2html.ErrWriteIndex, err)
		}
		entries = append(entries, conv.IndexEntry(r.InputPath, link, r.GeneratedAt))
	}

	if err := os.MkdirAll(filepath.Dir(indexPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", md2html.ErrWriteIndex, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(indexPath, conv.RenderIndex(entries), filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", md2html.ErrWriteIndex, err, hints.ForOutputDirectory())
	}
	return nil
}

// printResults reports written pages and failures, then the summary line.
func printResults(env *Environment, completed, failed []ConversionResult, indexPath string, quiet bool) {
	for _, r := range failed {
		fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
	}

	if quiet {
		return
	}

	for _, r := range completed {
		fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
	}
	fmt.Fprintf(env.Stdout, "HTML generated: %d pages (%s), index: %s\n",
		len(completed),
		humanize.Bytes(uint64(totalSize(completed))), // #nosec G115 -- sum of len()
		indexPath)
}
