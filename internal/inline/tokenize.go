package inline

// Tokenize converts text into spans in left-to-right order.
// Returns an error wrapping ErrMalformedInline when a delimiter is left open.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}

	var err error
	for _, d := range Delimiters {
		spans, err = SplitDelimiter(spans, d.Token, d.Kind)
		if err != nil {
			return nil, err
		}
	}

	if spans, err = SplitImages(spans); err != nil {
		return nil, err
	}
	return SplitLinks(spans)
}
