package md2site

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.PageInjector         = (*pipeline.PageTemplate)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter orchestrates the markdown-to-page pipeline.
// A Converter is safe for concurrent use once created.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pageInjector  pipeline.PageInjector
	cssInjector   pipeline.CSSInjector
	sanitizer     *pipeline.Sanitizer
	minifier      *pipeline.Minifier
	style         string // resolved CSS content
}

// Service is an alias for Converter.
type Service = Converter

// NewConverter creates a Converter with default configuration: native
// engine, embedded page template, no stylesheet.
// Returns an error if the engine is unknown or an asset cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{templateName: assets.DefaultTemplateName},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.SourcePreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	htmlConverter, err := pipeline.NewHTMLConverter(c.cfg.engine, c.cfg.rewriteLinks)
	if err != nil {
		return nil, err
	}
	c.htmlConverter = htmlConverter

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	if c.cfg.sanitize {
		c.sanitizer = pipeline.NewSanitizer()
	}
	if c.cfg.minify {
		c.minifier = pipeline.NewMinifier()
	}

	return c, nil
}

// Generate converts one markdown document into a complete page.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Generate(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
		if err != nil && input.SourcePath != "" {
			err = fmt.Errorf("%s: %w", input.SourcePath, err)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title, err := ExtractTitle(mdContent)
	if err != nil {
		return nil, err
	}

	content, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if c.sanitizer != nil {
		content = c.sanitizer.Sanitize(content)
	}

	htmlContent, err := c.pageInjector.InjectPage(ctx, title, content)
	if err != nil {
		return nil, err
	}

	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.style)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if c.minifier != nil {
		htmlContent, err = c.minifier.Minify(htmlContent)
		if err != nil {
			return nil, err
		}
	}

	return &Page{
		Title:   title,
		Content: content,
		HTML:    []byte(htmlContent),
	}, nil
}

// Engine returns the name of the markdown engine in use.
func (c *Converter) Engine() string {
	if c.cfg.engine == "" {
		return pipeline.EngineNative
	}
	return c.cfg.engine
}

// resolveStyle resolves the style input (name or path) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.style = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.style = css
	return nil
}

// resolveTemplate builds the page template from WithTemplate content or
// from the named template of the asset loader.
func (c *Converter) resolveTemplate() error {
	content := c.cfg.template
	if content == "" {
		var err error
		content, err = c.assetLoader.LoadTemplate(c.cfg.templateName)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", c.cfg.templateName, err)
		}
	}

	tmpl, err := pipeline.NewPageTemplate(content)
	if err != nil {
		return err
	}
	c.pageInjector = tmpl
	return nil
}

// validateInput checks that required fields are present.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return nil
}
