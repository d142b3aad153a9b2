// Package assets provides the HTML page and index templates for site generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in template sets (default, minimal)
// embedded at compile time.
//
// FilesystemLoader allows users to provide custom sets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the converter. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the set
// is not found. A template reference that looks like a path bypasses both
// loaders and is read from disk directly.
//
// # Directory Structure
//
//	{asset-path}/
//	└── templates/
//	    └── {name}/
//	        ├── page.html        # Page template: [TITLE] [UPDATE] [BODY]
//	        └── index.html       # Index template: [LIST]
//
// # Security
//
// Set names are plain identifiers: letters, digits, '-' and '_'.
// FilesystemLoader resolves symlinks and rejects set directories outside
// the asset path with ErrPathTraversal.
package assets
