package main

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/logger"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // MD2HTML_CONFIG: config file name or path
	InputDir       string // MD2HTML_INPUT_DIR: markdown directory
	IndexPath      string // MD2HTML_INDEX: index page path
	PageTemplate   string // MD2HTML_PAGE_TEMPLATE: page template name or path
	IndexTemplate  string // MD2HTML_INDEX_TEMPLATE: index template name or path
	AssetPath      string // MD2HTML_ASSET_PATH: custom template sets
	TitlePrefix    string // MD2HTML_TITLE_PREFIX: [TITLE] prefix
	UpdateLabel    string // MD2HTML_UPDATE_LABEL: [UPDATE] label
	DateFormat     string // MD2HTML_DATE_FORMAT: timestamp format
	HighlightStyle string // MD2HTML_HIGHLIGHT_STYLE: chroma style
	Workers        int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":          true,
	"MD2HTML_INPUT_DIR":       true,
	"MD2HTML_INDEX":           true,
	"MD2HTML_PAGE_TEMPLATE":   true,
	"MD2HTML_INDEX_TEMPLATE":  true,
	"MD2HTML_ASSET_PATH":      true,
	"MD2HTML_TITLE_PREFIX":    true,
	"MD2HTML_UPDATE_LABEL":    true,
	"MD2HTML_DATE_FORMAT":     true,
	"MD2HTML_HIGHLIGHT_STYLE": true,
	"MD2HTML_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("MD2HTML_CONFIG"),
		InputDir:       os.Getenv("MD2HTML_INPUT_DIR"),
		IndexPath:      os.Getenv("MD2HTML_INDEX"),
		PageTemplate:   os.Getenv("MD2HTML_PAGE_TEMPLATE"),
		IndexTemplate:  os.Getenv("MD2HTML_INDEX_TEMPLATE"),
		AssetPath:      os.Getenv("MD2HTML_ASSET_PATH"),
		TitlePrefix:    os.Getenv("MD2HTML_TITLE_PREFIX"),
		UpdateLabel:    os.Getenv("MD2HTML_UPDATE_LABEL"),
		DateFormat:     os.Getenv("MD2HTML_DATE_FORMAT"),
		HighlightStyle: os.Getenv("MD2HTML_HIGHLIGHT_STYLE"),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_WORKER instead of MD2HTML_WORKERS.
func warnUnknownEnvVars(log *logger.Logger) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}

	sort.Strings(unknown)
	for _, name := range unknown {
		log.UnknownEnvVar(name, suggestEnvVar(name))
	}
}

// suggestEnvVar returns the known variable that name is a prefix of, or
// that is a prefix of name. Empty when nothing is close.
func suggestEnvVar(name string) string {
	var matches []string
	for known := range knownEnvVars {
		if strings.HasPrefix(known, name) || strings.HasPrefix(name, known) {
			matches = append(matches, known)
		}
	}
	if len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	return matches[0]
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags. Precedence: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIf(&cfg.Input.Dir, env.InputDir)
	setIf(&cfg.Output.Index, env.IndexPath)
	setIf(&cfg.Templates.Page, env.PageTemplate)
	setIf(&cfg.Templates.Index, env.IndexTemplate)
	setIf(&cfg.Templates.BasePath, env.AssetPath)
	setIf(&cfg.Page.TitlePrefix, env.TitlePrefix)
	setIf(&cfg.Page.UpdateLabel, env.UpdateLabel)
	setIf(&cfg.Page.DateFormat, env.DateFormat)
	setIf(&cfg.Highlight.Style, env.HighlightStyle)

	if env.Workers > 0 {
		cfg.Batch.Workers = env.Workers
	}
}

// setIf assigns value to dst when value is non-empty.
func setIf(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
