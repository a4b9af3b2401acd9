package assets

import "errors"

// AssetResolver looks an asset up in each layer in turn. A custom
// directory, when configured, shadows the embedded assets name by name.
type AssetResolver struct {
	layers []AssetLoader
}

// NewAssetResolver returns a resolver over customBasePath, if not empty,
// then the embedded assets.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, custom)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())
	return r, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(AssetLoader.LoadStyle, name)
}

func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(AssetLoader.LoadTemplate, name)
}

// first returns the asset from the first layer holding it. Any error other
// than not-found stops the lookup, so a bad custom file is never masked.
func (r *AssetResolver) first(load func(AssetLoader, string) (string, error), name string) (string, error) {
	var err error
	for _, layer := range r.layers {
		var content string
		if content, err = load(layer, name); err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return "", err
}

var _ AssetLoader = (*AssetResolver)(nil)
