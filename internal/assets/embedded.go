package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

//go:embed templates/*.html
var templates embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a stylesheet from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readEmbedded(styles, "styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate loads a page template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readEmbedded(templates, "templates", name, ".html", ErrTemplateNotFound)
}

// Styles returns the names of the embedded stylesheets, sorted.
func (e *EmbeddedLoader) Styles() []string {
	return listEmbedded(styles, "styles", ".css")
}

// Templates returns the names of the embedded page templates, sorted.
func (e *EmbeddedLoader) Templates() []string {
	return listEmbedded(templates, "templates", ".html")
}

func readEmbedded(fsys embed.FS, dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fsys.ReadFile(path.Join(dir, name+ext))
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}

	return string(content), nil
}

func listEmbedded(fsys embed.FS, dir, ext string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
