package assets

// Names of the built-in assets.
const (
	DefaultTemplateName = "page"
	DefaultStyleName    = "default"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded stylesheet by name (without .css).
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an embedded page template by name (without .html).
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
