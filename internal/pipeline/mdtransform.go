package pipeline

import (
	"context"
	"strings"
)

// MarkdownPreprocessor rewrites raw markdown before it reaches the parser.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// lineEndings maps CRLF and lone CR to LF. CRLF is listed first so it is
// matched as a unit.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SourcePreprocessor cleans up lecture note sources saved by other editors.
type SourcePreprocessor struct{}

// PreprocessMarkdown drops a leading byte order mark and converts line
// endings to LF. A cancelled ctx returns content unchanged.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return lineEndings.Replace(strings.TrimPrefix(content, "\uFEFF"))
}

var _ MarkdownPreprocessor = (*SourcePreprocessor)(nil)
