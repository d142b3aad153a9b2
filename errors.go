package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrMarkdownTooLarge = errors.New("markdown content exceeds maximum size")
	ErrInvalidName      = errors.New("invalid input name")
	ErrRenderHTML       = errors.New("HTML rendering failed")

	// Converter setup errors.
	ErrInvalidHighlightStyle = errors.New("unknown highlight style")
	ErrInvalidTimestamp      = errors.New("invalid timestamp format")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
	ErrLoadTemplate          = errors.New("failed to load template")

	// Batch errors, returned by the CLI driver.
	ErrNoInput      = errors.New("input directory not found")
	ErrInputNotDir  = errors.New("input path is not a directory")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML page")
	ErrWriteIndex   = errors.New("failed to write index page")
	ErrPartialBatch = errors.New("some pages failed to convert")
)
