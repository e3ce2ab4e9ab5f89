// Package neurapress converts Markdown to HTML styled entirely with inline
// style attributes, for rich-text editors that drop stylesheets on paste.
//
// # Quick Start
//
// Create a renderer and render Markdown:
//
//	r, err := neurapress.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, neurapress.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err) // only when ctx is done
//	}
//	fmt.Println(result.HTML)
//
// # Rendering Pipeline
//
// Each call to Render follows these stages:
//
//  1. Option resolution: built-in defaults, then the template preset, then Input.Overrides
//  2. Optional Markdown preprocessing (bullet normalization, off by default)
//  3. Parsing with goldmark: GFM, footnotes, $$ formula blocks, $ inline
//     formulas, diagram fences and :::recommend cards
//  4. Rendering every node with inline styles, KaTeX formulas and
//     chroma-highlighted code with line numbers
//  5. Wrapping in a <section> carrying the base font and theme color
//
// Render never fails on bad input. A formula that KaTeX rejects, an unclosed
// block or an empty card is shown as its escaped source and logged.
//
// # Templates
//
// Presets are YAML files holding RendererOptions. Three are embedded
// (default, elegant, minimal). WithAssetPath adds {path}/templates/{id}.yaml,
// which takes precedence over embedded presets of the same id:
//
//	r, err := neurapress.NewRenderer(
//	    neurapress.WithAssetPath("/path/to/assets"),
//	    neurapress.WithTemplate("brand"),
//	)
//
// Per-render overrides are merged over the preset property by property:
//
//	result, err := r.Render(ctx, neurapress.Input{
//	    Markdown: content,
//	    Overrides: neurapress.RendererOptions{
//	        Base:  neurapress.BaseOptions{ThemeColor: "#ff0000"},
//	        Block: map[string]neurapress.StyleOptions{"h1": {"fontSize": 28}},
//	    },
//	})
//
// # Diagrams
//
// Diagram fences render as <div class="mermaid"> placeholders holding the
// diagram source. A DiagramPass replaces them with SVG in a second step:
//
//	pass := neurapress.NewDiagramPass(neurapress.NewChromeRasterizer(), nil)
//	gen := pass.Next()
//	html, err := pass.Run(ctx, gen, result.HTML)
//	if errors.Is(err, neurapress.ErrSuperseded) {
//	    // a newer render started; drop this result
//	}
//
// For batch rendering, RasterizerPool manages one browser per worker.
package neurapress
