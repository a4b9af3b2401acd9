package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of documents saved by some editors.
const byteOrderMark = "\uFEFF"

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Runs of blank lines collapse to one separator
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor normalizes raw markdown before block segmentation.
type SourcePreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
