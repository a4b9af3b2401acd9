package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrNoTitle          = errors.New("document has no level-1 heading on its first line")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Conversion errors raised by the parsers and the renderer.
	ErrMalformedInline     = inline.ErrMalformedInline
	ErrUnsupportedSpanKind = inline.ErrUnsupportedSpanKind
	ErrStructural          = htmlnode.ErrStructural

	// Page pipeline errors.
	ErrHTMLConversion      = pipeline.ErrHTMLConversion
	ErrUnknownEngine       = pipeline.ErrUnknownEngine
	ErrTemplatePlaceholder = pipeline.ErrTemplatePlaceholder
)
