package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Placeholders substituted by PageTemplate.Execute.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplatePlaceholder indicates a page template without a content slot.
var ErrTemplatePlaceholder = errors.New("template is missing the " + ContentPlaceholder + " placeholder")

// PageTemplate wraps converted content in a full HTML page.
type PageTemplate struct {
	content string
}

// NewPageTemplate validates that content carries a content placeholder.
// The title placeholder is optional.
func NewPageTemplate(content string) (*PageTemplate, error) {
	if !strings.Contains(content, ContentPlaceholder) {
		return nil, ErrTemplatePlaceholder
	}
	return &PageTemplate{content: content}, nil
}

// Execute replaces every title placeholder, then every content placeholder.
// Values are inserted verbatim, so a placeholder inside the content is
// never expanded.
func (t *PageTemplate) Execute(title, content string) string {
	page := strings.ReplaceAll(t.content, TitlePlaceholder, title)
	return strings.ReplaceAll(page, ContentPlaceholder, content)
}

// String returns the raw template text.
func (t *PageTemplate) String() string {
	return t.content
}

// PageInjector defines the contract for wrapping content in a page.
type PageInjector interface {
	InjectPage(ctx context.Context, title, content string) (string, error)
}

// InjectPage implements PageInjector.
func (t *PageTemplate) InjectPage(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("injecting page: %w", err)
	}
	return t.Execute(title, content), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
