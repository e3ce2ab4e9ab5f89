package neurapress

import (
	"github.com/tianyaxiang/neurapress-sub000/internal/highlight"
	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// Style types shared with the rendering pipeline.
type (
	// StyleOptions maps camelCase CSS properties to values for one element kind.
	StyleOptions = style.StyleOptions
	// BaseOptions holds the document-wide settings of the outer wrapper.
	BaseOptions = style.BaseOptions
	// RendererOptions is the full style configuration of one render.
	RendererOptions = style.RendererOptions
	// CodeTheme is a syntax highlighting palette.
	CodeTheme = highlight.CodeTheme
)

// Input holds one render request.
type Input struct {
	// Markdown is the document source. Empty input renders to an empty wrapper.
	Markdown string

	// Template is the preset id. Empty uses the Renderer's default template.
	// An unknown id logs a warning and falls back to the default template.
	Template string

	// Overrides are applied on top of the template preset.
	Overrides RendererOptions

	// UnsafeHTML passes raw HTML blocks and inlines through unchanged.
	// When false they are omitted.
	UnsafeHTML bool

	// AssetDir resolves relative image and link paths to file:// URLs.
	// Empty leaves them untouched.
	AssetDir string
}

// Result is the output of one render.
type Result struct {
	// HTML is the styled fragment. All styling is inline.
	HTML string

	// Template is the id of the preset actually used.
	Template string

	// Options are the fully resolved options the HTML was rendered with.
	Options RendererOptions
}
