package inline

import (
	"fmt"
	"regexp"
)

// Precompiled patterns. Neither alt text nor URL may contain brackets or
// parentheses respectively.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Match is one image or link reference found in a text.
// Start and End are byte offsets of the full markdown syntax.
type Match struct {
	Alt   string
	URL   string
	Start int
	End   int
}

// ExtractImages returns every ![alt](url) in text, left to right.
func ExtractImages(text string) []Match {
	return findMatches(imagePattern, text, false)
}

// ExtractLinks returns every [text](url) in text that is not an image.
func ExtractLinks(text string) []Match {
	return findMatches(linkPattern, text, true)
}

// findMatches runs re over text. With skipImages, a match directly preceded
// by '!' is discarded; RE2 has no look-behind to express that in the pattern.
func findMatches(re *regexp.Regexp, text string, skipImages bool) []Match {
	idx := re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(idx))
	for _, m := range idx {
		if skipImages && m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		matches = append(matches, Match{
			Alt:   text[m[2]:m[3]],
			URL:   text[m[4]:m[5]],
			Start: m[0],
			End:   m[1],
		})
	}
	return matches
}

// SplitImages isolates image references inside Plain spans.
func SplitImages(spans []Span) ([]Span, error) {
	return splitReferences(spans, Image, ExtractImages)
}

// SplitLinks isolates link references inside Plain spans.
// Run it after SplitImages so image syntax is never taken for a link.
func SplitLinks(spans []Span) ([]Span, error) {
	return splitReferences(spans, Link, ExtractLinks)
}

func splitReferences(spans []Span, kind Kind, extract func(string) []Match) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		matches := extract(span.Text)
		if len(matches) == 0 {
			out = append(out, span)
			continue
		}

		split, err := splitSpan(span.Text, matches, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, split...)
	}
	return out, nil
}

// splitSpan cuts text around matches, emitting the text between references
// as Plain spans. Empty Plain pieces are dropped.
func splitSpan(text string, matches []Match, kind Kind) ([]Span, error) {
	var out []Span
	prev := 0
	for _, m := range matches {
		if before := text[prev:m.Start]; before != "" {
			out = append(out, PlainSpan(before))
		}
		ref, err := newTargetSpan(kind, m.Alt, m.URL)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
		prev = m.End
	}
	if rest := text[prev:]; rest != "" {
		out = append(out, PlainSpan(rest))
	}
	return out, nil
}

func newTargetSpan(kind Kind, alt, url string) (Span, error) {
	if !kind.HasTarget() {
		return Span{}, fmt.Errorf("%w: %s", ErrUnsupportedSpanKind, kind)
	}
	return Span{Text: alt, Kind: kind, Target: url}, nil
}
