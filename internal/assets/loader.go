package assets

import "errors"

// Lookup and I/O failures reported by the loaders.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name") // separators, "..", too long
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrPathTraversal    = errors.New("path traversal detected") // resolved outside the base dir
)

// AssetLoader resolves an asset name, given without extension, to its
// content. Styles live in <name>.css and page templates in <name>.html.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
