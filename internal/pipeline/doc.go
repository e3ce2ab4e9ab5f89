// Package pipeline renders Markdown to HTML whose every element carries its
// styling inline.
//
// An Engine is built per render call from a resolved style.RendererOptions.
// It wires goldmark with the GFM and footnote extensions, the custom
// syntaxes from mdext and a single NodeRenderer that overrides goldmark's
// HTML output for every node kind:
//   - headings and strong text take the theme color unless styled otherwise
//   - code blocks are highlighted with line numbers under a title bar
//   - formulas go through a MathRenderer; failures fall back to source text
//   - diagrams become placeholders for a later rasterizing pass
//
// The output is wrapped in a section carrying the base font settings and
// the theme color variable.
package pipeline
