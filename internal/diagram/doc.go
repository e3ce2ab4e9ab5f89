// Package diagram runs the second, asynchronous phase of diagram rendering.
//
// The Markdown pipeline stages each diagram as a `<div class="mermaid">`
// placeholder holding the normalized source. A Pass scans rendered HTML for
// those placeholders, hands each source to a Rasterizer and swaps the SVG in.
// Every render is stamped with a generation from a Tracker; a pass whose
// generation is no longer current discards its work instead of writing it.
package diagram
