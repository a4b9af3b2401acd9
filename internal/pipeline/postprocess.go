package pipeline

import (
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

// Sanitizer strips unsafe markup from generated content.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// highlightClass matches the class names emitted by chroma and goldmark.
var highlightClass = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// NewSanitizer returns a sanitizer using bluemonday's user generated
// content policy, extended to keep syntax highlighting classes and
// heading anchors.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(highlightClass).OnElements("pre", "code", "span")
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return &Sanitizer{policy: policy}
}

// Sanitize returns content with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}

// Minifier compacts full HTML pages, including inline stylesheets.
type Minifier struct {
	m *minify.M
}

// NewMinifier registers the HTML and CSS minifiers.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return &Minifier{m: m}
}

// Minify returns the minified page.
func (m *Minifier) Minify(page string) (string, error) {
	out, err := m.m.String("text/html", page)
	if err != nil {
		return "", fmt.Errorf("minifying page: %w", err)
	}
	return out, nil
}
