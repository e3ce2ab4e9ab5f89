package pipeline

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Bullet characters pasted from word processors, at the start of a line
	bulletLine = regexp.MustCompile(`(?m)^([ \t]*)[•·▪◦‣][ \t]*`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// PassthroughPreprocessor returns its input unchanged. It is the default.
type PassthroughPreprocessor struct{}

// PreprocessMarkdown implements MarkdownPreprocessor.
func (PassthroughPreprocessor) PreprocessMarkdown(_ context.Context, content string) string {
	return content
}

// BulletPreprocessor rewrites pasted bullet characters into Markdown list
// markers. It is opt-in.
type BulletPreprocessor struct{}

// PreprocessMarkdown implements MarkdownPreprocessor.
func (BulletPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	return bulletLine.ReplaceAllString(content, "${1}- ")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
