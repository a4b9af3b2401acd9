// Package assets provides the page templates and stylesheets used to
// generate site pages. Assets can be loaded from embedded files or from a
// custom directory on disk.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found, so a site can override one asset and keep the other defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css     # stylesheet injected as <style>
//	└── templates/
//	    └── {name}.html    # page template with {{ Title }} and {{ Content }}
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
