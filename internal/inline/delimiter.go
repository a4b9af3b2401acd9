package inline

import (
	"fmt"
	"strings"
)

// Delimiter pairs a markdown delimiter with the kind it produces.
type Delimiter struct {
	Token string
	Kind  Kind
}

// Delimiters lists the delimiter stages in the order Tokenize applies them.
var Delimiters = []Delimiter{
	{Token: "**", Kind: Bold},
	{Token: "_", Kind: Italic},
	{Token: "`", Kind: Code},
}

// SplitDelimiter splits every Plain span on delim. Pieces alternate between
// Plain and kind, so an even piece count means a delimiter was left open.
// Empty pieces are dropped. Spans of any other kind are copied unchanged.
func SplitDelimiter(spans []Span, delim string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		pieces := strings.Split(span.Text, delim)
		if len(pieces)%2 == 0 {
			return nil, fmt.Errorf("%w: unterminated %q in %q", ErrMalformedInline, delim, span.Text)
		}

		for i, piece := range pieces {
			if piece == "" {
				continue
			}
			k := Plain
			if i%2 == 1 {
				k = kind
			}
			out = append(out, Span{Text: piece, Kind: k})
		}
	}
	return out, nil
}
