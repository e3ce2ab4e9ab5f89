// Package style resolves per-element style configuration into inline CSS.
//
// A render pass consumes a single RendererOptions value built by merging, in
// increasing precedence, the built-in defaults, a template preset and user
// overrides. Every merge returns a new value; inputs are never mutated.
package style

// Block element kinds.
const (
	BlockH1        = "h1"
	BlockH2        = "h2"
	BlockH3        = "h3"
	BlockH4        = "h4"
	BlockH5        = "h5"
	BlockH6        = "h6"
	BlockParagraph = "p"
	BlockQuote     = "blockquote"
	BlockCodePre   = "code_pre"
	BlockImage     = "image"
	BlockUL        = "ul"
	BlockOL        = "ol"
	BlockTable     = "table"
	BlockTH        = "th"
	BlockTD        = "td"
	BlockFootnotes = "footnotes"
	BlockLatex     = "latex"
	BlockMermaid   = "mermaid"
	BlockHR        = "hr"
	BlockRecommend = "recommend"
)

// Inline element kinds.
const (
	InlineStrong   = "strong"
	InlineEm       = "em"
	InlineCodespan = "codespan"
	InlineLink     = "link"
	InlineListItem = "listitem"
	InlineDel      = "del"
	InlineCheckbox = "checkbox"
	InlineLatex    = "latex"
	InlineFootnote = "footnote"
)

// TitleBarKey is a boolean directive on the code_pre block. When false the
// decorative window title bar is not rendered. It is never emitted as CSS.
const TitleBarKey = "titleBar"

// StyleOptions maps camelCase CSS property names to values.
// Values may be strings, numbers or booleans (directives); nil removes the
// property from the output.
type StyleOptions map[string]any

// Color returns the color property as a string, or "" if unset.
func (s StyleOptions) Color() string {
	v, ok := s["color"].(string)
	if !ok {
		return ""
	}
	return v
}

// Flag reports a boolean directive, returning def when it is absent or not
// a boolean-like value.
func (s StyleOptions) Flag(key string, def bool) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		switch v {
		case "true", "on", "yes":
			return true
		case "false", "off", "no", "none":
			return false
		}
	}
	return def
}

// BaseOptions holds the document-wide settings applied to the outer wrapper.
type BaseOptions struct {
	ThemeColor string `yaml:"themeColor,omitempty"`
	FontSize   string `yaml:"fontSize,omitempty"`
	LineHeight string `yaml:"lineHeight,omitempty"`
	TextAlign  string `yaml:"textAlign,omitempty"`
	FontFamily string `yaml:"fontFamily,omitempty"`
}

// IsZero reports whether no base setting is present.
func (b BaseOptions) IsZero() bool {
	return b == BaseOptions{}
}

// RendererOptions is the full configuration consumed by one render pass.
type RendererOptions struct {
	Base      BaseOptions             `yaml:"base,omitempty"`
	Block     map[string]StyleOptions `yaml:"block,omitempty"`
	Inline    map[string]StyleOptions `yaml:"inline,omitempty"`
	CodeTheme string                  `yaml:"codeTheme,omitempty"`
}

// BlockStyle returns the style for a block kind. The result is a copy and
// safe to modify.
func (o RendererOptions) BlockStyle(kind string) StyleOptions {
	return MergeStyles(o.Block[kind])
}

// InlineStyle returns the style for an inline kind. The result is a copy and
// safe to modify.
func (o RendererOptions) InlineStyle(kind string) StyleOptions {
	return MergeStyles(o.Inline[kind])
}
