// Package logger wraps charm/log with the events emitted during a site build.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "md2html",
	})
	return &Logger{Logger: l}
}

// LevelFor maps the CLI verbosity flags to a log level. Quiet wins over verbose.
func LevelFor(verbose, quiet bool) log.Level {
	switch {
	case quiet:
		return log.WarnLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// BatchStarted logs the discovered input set
func (l *Logger) BatchStarted(inputDir string, files, workers int) {
	l.Info("batch started",
		"input_dir", inputDir,
		"files", files,
		"workers", workers)
}

// PageConverted logs a single written page
func (l *Logger) PageConverted(source, dest string, size int, headings int, elapsed time.Duration) {
	l.Debug("page converted",
		"source", source,
		"dest", dest,
		"size", humanize.Bytes(uint64(size)), // #nosec G115 -- size comes from len()
		"headings", headings,
		"duration", elapsed.Round(time.Microsecond))
}

// PageFailed logs a conversion error for one input
func (l *Logger) PageFailed(source string, err error) {
	l.Error("page failed",
		"source", source,
		"error", err)
}

// IndexWritten logs the index page write
func (l *Logger) IndexWritten(path string, entries int) {
	l.Debug("index written",
		"path", path,
		"entries", entries)
}

// MissingPlaceholders warns that a template lacks placeholders, so the
// corresponding values will not appear in the output.
func (l *Logger) MissingPlaceholders(template string, missing []string) {
	if len(missing) == 0 {
		return
	}
	l.Warn("template placeholders missing",
		"template", template,
		"missing", strings.Join(missing, ","))
}

// UnknownEnvVar warns about an MD2HTML_* variable that is not recognized
func (l *Logger) UnknownEnvVar(name, suggestion string) {
	if suggestion != "" {
		l.Warn("unknown environment variable", "name", name, "did_you_mean", suggestion)
		return
	}
	l.Warn("unknown environment variable", "name", name)
}

// ConfigLoaded logs the resolved config source
func (l *Logger) ConfigLoaded(source string) {
	l.Debug("config loaded", "source", source)
}
