package md2site

// Input contains generation parameters for one page.
type Input struct {
	Markdown   string // Markdown content (required)
	SourcePath string // Source file, used in error messages (optional)
}

// Page is a generated HTML page.
type Page struct {
	Title   string // Text of the leading level-1 heading
	Content string // Converted fragment substituted for {{ Content }}
	HTML    []byte // Complete page
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine       string
	template     string // template content, overrides templateName
	templateName string
	assetPath    string
	styleInput   string // style name or CSS file path
	rewriteLinks bool
	sanitize     bool
	minify       bool
}

// WithEngine selects the markdown engine ("native" or "goldmark").
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithTemplate sets the page template content directly.
// Takes precedence over WithTemplateName.
func WithTemplate(content string) Option {
	return func(c *Converter) {
		c.cfg.template = content
	}
}

// WithTemplateName loads the page template by name from the asset loader.
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath sets a custom directory searched for styles and templates
// before the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithStyle sets the stylesheet injected into every page.
// Accepts a style name ("default") or a path to a CSS file ("./my.css").
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithRewriteLinks turns relative links to .md files into links to the
// generated .html pages.
func WithRewriteLinks(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = enabled
	}
}

// WithSanitize filters the converted content through an HTML allowlist.
func WithSanitize(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.sanitize = enabled
	}
}

// WithMinify minifies every generated page.
func WithMinify(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.minify = enabled
	}
}
