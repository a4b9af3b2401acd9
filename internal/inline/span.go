// Package inline tokenizes the text of one block into typed spans.
//
// Tokenize runs a fixed pipeline over a span slice:
//
//  1. Delimiter splitting for **bold**, _italic_ and `code`, in that order.
//  2. Image extraction: ![alt](url).
//  3. Link extraction: [text](url), never preceded by '!'.
//
// Every stage only rewrites Plain spans, so spans typed by an earlier stage
// pass through untouched and spans never nest.
package inline

import "errors"

// Sentinel errors for tokenization.
var (
	// ErrMalformedInline indicates an unterminated inline delimiter.
	ErrMalformedInline = errors.New("invalid markdown inline syntax")

	// ErrUnsupportedSpanKind indicates a kind other than Link or Image was
	// passed to the link/image splitter.
	ErrUnsupportedSpanKind = errors.New("unsupported span kind")
)

// Kind is the inline type of a span.
type Kind int

// Span kinds.
const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// HasTarget reports whether spans of this kind carry a URL.
func (k Kind) HasTarget() bool {
	return k == Link || k == Image
}

// Span is one typed fragment of inline text.
// Target is the URL for Link and Image spans and empty otherwise.
type Span struct {
	Text   string
	Kind   Kind
	Target string
}

// PlainSpan returns an untyped span.
func PlainSpan(text string) Span {
	return Span{Text: text, Kind: Plain}
}
