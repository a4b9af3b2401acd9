package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// Sentinel errors for HTML conversion.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownEngine  = errors.New("unknown conversion engine")
)

// Engine names accepted by NewHTMLConverter.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Engines lists the supported engine names.
var Engines = []string{EngineNative, EngineGoldmark}

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewHTMLConverter returns the converter registered under engine.
// An empty name selects the native engine.
func NewHTMLConverter(engine string, rewriteLinks bool) (HTMLConverter, error) {
	switch engine {
	case "", EngineNative:
		return &NativeConverter{RewriteLinks: rewriteLinks}, nil
	case EngineGoldmark:
		c := NewGoldmarkConverter()
		c.rewriteLinks = rewriteLinks
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownEngine, engine, Engines)
	}
}

// NativeConverter converts the supported markdown subset through the
// block and inline parsers and renders the resulting node tree.
type NativeConverter struct {
	RewriteLinks bool
}

// ToHTML converts content to a div-rooted HTML fragment.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := BuildTree(content)
	if err != nil {
		return "", err
	}
	if c.RewriteLinks {
		RewriteLinks(root)
	}
	return htmlnode.Render(root)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (CommonMark + GFM).
type GoldmarkConverter struct {
	md           goldmark.Markdown
	rewriteLinks bool
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // styled by the page stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchors for in-page links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe() not used: raw HTML in markdown is dropped.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		out := buf.String()
		if c.rewriteLinks {
			rewritten, err := RewriteHTMLLinks(out)
			if err != nil {
				done <- result{err: fmt.Errorf("%w: rewriting links: %v", ErrHTMLConversion, err)}
				return
			}
			out = rewritten
		}
		done <- result{html: out}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
