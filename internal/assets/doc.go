// Package assets provides the template presets a render starts from.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in presets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in presets (default, elegant, minimal)
// embedded at compile time.
//
// FilesystemLoader allows users to provide presets from a directory, with
// path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the renderer. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the preset is
// not found. This enables overriding or adding presets while keeping the
// built-in ones.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {id}.yaml            # Template preset (e.g., elegant.yaml)
//
// A preset file holds an id, a display name, a description and the
// renderer options it applies on top of the built-in defaults:
//
//	id: elegant
//	name: Elegant
//	options:
//	  base:
//	    themeColor: "#8B5CF6"
//	  block:
//	    h1:
//	      fontSize: 26
//
// # Security
//
// Template ids are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
