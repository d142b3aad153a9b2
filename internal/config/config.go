package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound        = errors.New("config file not found")
	ErrEmptyConfigName       = errors.New("config name cannot be empty")
	ErrConfigParse           = errors.New("failed to parse config")
	ErrFieldTooLong          = errors.New("field exceeds maximum length")
	ErrInvalidHighlightStyle = errors.New("unknown highlight style")
	ErrInvalidWorkerCount    = errors.New("invalid worker count")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxTemplateRefLength = 4096 // name or path
	MaxTitlePrefixLength = 100
	MaxLabelLength       = 100
	MaxStyleNameLength   = 50
	MaxWorkers           = 64
)

// Defaults applied by DefaultConfig.
const (
	DefaultTitlePrefix    = "ZETIN::"
	DefaultUpdateLabel    = "Last updated: "
	DefaultHighlightStyle = "github"
	DefaultTemplate       = "default"
)

// configDirName is the directory searched under os.UserConfigDir().
const configDirName = "go-md2html"

// Config holds all configuration for a site build.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Templates TemplatesConfig `yaml:"templates"`
	Page      PageConfig      `yaml:"page"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Highlight HighlightConfig `yaml:"highlight"`
	Batch     BatchConfig     `yaml:"batch"`
}

// InputConfig defines the markdown source directory.
type InputConfig struct {
	Dir string `yaml:"dir"` // Empty = must be given on the command line
}

// OutputConfig defines where the index page is written.
type OutputConfig struct {
	Index string `yaml:"index"` // Empty = index.html next to the input directory
}

// TemplatesConfig selects page and index templates.
type TemplatesConfig struct {
	Page     string `yaml:"page"`     // Embedded name or path (default: "default")
	Index    string `yaml:"index"`    // Embedded name or path (default: "default")
	BasePath string `yaml:"basePath"` // Directory searched for named templates before the embedded set
}

// PageConfig defines the text substituted into page templates.
type PageConfig struct {
	TitlePrefix string `yaml:"titlePrefix"` // Prepended to the base file name for [TITLE]
	UpdateLabel string `yaml:"updateLabel"` // Prepended to the timestamp for [UPDATE]
	DateFormat  string `yaml:"dateFormat"`  // dateutil layout or preset name
}

// MarkdownConfig defines parser options.
type MarkdownConfig struct {
	AllowHTML bool `yaml:"allowHTML"` // Pass raw HTML blocks through
}

// HighlightConfig defines fenced code highlighting.
type HighlightConfig struct {
	Style   string `yaml:"style"`   // chroma style name
	Classes bool   `yaml:"classes"` // Emit CSS classes instead of inline styles
}

// BatchConfig defines concurrency and failure policy.
type BatchConfig struct {
	Workers   int  `yaml:"workers"`   // 0 = auto
	KeepGoing bool `yaml:"keepGoing"` // Write the index from successes when some pages fail
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.dir", c.Input.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.index", c.Output.Index, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates.page", c.Templates.Page, MaxTemplateRefLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates.index", c.Templates.Index, MaxTemplateRefLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates.basePath", c.Templates.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.titlePrefix", c.Page.TitlePrefix, MaxTitlePrefixLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.updateLabel", c.Page.UpdateLabel, MaxLabelLength); err != nil {
		return err
	}
	if c.Page.DateFormat != "" {
		if _, err := dateutil.ParseDateFormat(c.Page.DateFormat); err != nil {
			return fmt.Errorf("page.dateFormat: %w", err)
		}
	}

	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleNameLength); err != nil {
		return err
	}
	if c.Highlight.Style != "" && !IsHighlightStyle(c.Highlight.Style) {
		return fmt.Errorf("%w: highlight.style %q", ErrInvalidHighlightStyle, c.Highlight.Style)
	}

	if c.Batch.Workers < 0 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("%w: batch.workers must be between 0 and %d, got %d", ErrInvalidWorkerCount, MaxWorkers, c.Batch.Workers)
	}

	return nil
}

// IsHighlightStyle reports whether name is a registered chroma style.
func IsHighlightStyle(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// HighlightStyles lists the registered chroma style names, sorted.
func HighlightStyles() []string {
	return styles.Names()
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Templates: TemplatesConfig{Page: DefaultTemplate, Index: DefaultTemplate},
		Page: PageConfig{
			TitlePrefix: DefaultTitlePrefix,
			UpdateLabel: DefaultUpdateLabel,
			DateFormat:  dateutil.DefaultDateFormat,
		},
		Markdown:  MarkdownConfig{AllowHTML: true},
		Highlight: HighlightConfig{Style: DefaultHighlightStyle},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations resolveConfigPath tries for name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// current directory first, then ~/.config/go-md2html/, .yaml before .yml.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
