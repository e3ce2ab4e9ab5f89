package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/mdext"
	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// Errors reported for custom syntax nodes that fall back to their source.
var (
	ErrUnclosedBlock    = errors.New("block is not closed")
	ErrNoRecommendItems = errors.New("recommend block has no valid items")
	ErrNoMathRenderer   = errors.New("no math renderer configured")
	ErrExtensionRender  = errors.New("extension render failed")
)

// extensionFunc renders one custom syntax node to HTML.
type extensionFunc func(source []byte, n ast.Node) (string, error)

// extension adapts an extensionFunc into a NodeRendererFunc. A failure or
// panic is logged and the node's source text is emitted instead.
func (r *Renderer) extension(render extensionFunc) renderer.NodeRendererFunc {
	return func(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		out, err := r.safeRender(render, source, n)
		if err != nil {
			r.logger.Warn("render failed, using source text", "node", n.Kind().String(), "err", err)
			out = r.fallback(source, n)
		}
		_, _ = w.WriteString(out)
		return ast.WalkSkipChildren, nil
	}
}

func (r *Renderer) safeRender(render extensionFunc, source []byte, n ast.Node) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = "", fmt.Errorf("%w: %v", ErrExtensionRender, rec)
		}
	}()
	return render(source, n)
}

// fallback renders the node's source text, escaped.
func (r *Renderer) fallback(source []byte, n ast.Node) string {
	var raw []byte
	if rn, ok := n.(interface{ Raw(source []byte) []byte }); ok {
		raw = rn.Raw(source)
	} else {
		raw = n.Lines().Value(source)
	}
	escaped := string(util.EscapeHTML(raw))

	if n.Type() != ast.TypeBlock {
		return escaped
	}
	return `<p style="` + styleString(r.paragraphStyle()) + `">` + escaped + "</p>\n"
}

func (r *Renderer) renderMath(formula []byte, display bool) (string, error) {
	if r.math == nil {
		return "", ErrNoMathRenderer
	}
	return r.math.Render(string(formula), display)
}

func (r *Renderer) renderMathBlock(source []byte, node ast.Node) (string, error) {
	n := node.(*mdext.MathBlock)
	if !n.Closed {
		return "", fmt.Errorf("%w: $$", ErrUnclosedBlock)
	}
	out, err := r.renderMath(n.Formula(source), true)
	if err != nil {
		return "", err
	}
	return `<section style="` + styleString(r.opts.BlockStyle(style.BlockLatex)) + `">` + out + "</section>\n", nil
}

func (r *Renderer) renderMathInline(source []byte, node ast.Node) (string, error) {
	n := node.(*mdext.MathInline)
	out, err := r.renderMath(n.Formula(source), n.Display)
	if err != nil {
		return "", err
	}

	s := r.opts.InlineStyle(style.InlineLatex)
	if n.Display {
		s = style.MergeStyles(r.opts.BlockStyle(style.BlockLatex), style.StyleOptions{"display": "block"})
	}
	return `<span style="` + styleString(s) + `">` + out + "</span>", nil
}

func (r *Renderer) renderDiagram(source []byte, node ast.Node) (string, error) {
	src := mdext.NormalizeDiagram(string(node.Lines().Value(source)))
	id := r.diagrams
	r.diagrams++

	var b strings.Builder
	b.WriteString(`<div class="mermaid" data-diagram="`)
	b.WriteString(strconv.Itoa(id))
	b.WriteString(`" style="`)
	b.WriteString(styleString(r.opts.BlockStyle(style.BlockMermaid)))
	b.WriteString(`">`)
	b.Write(util.EscapeHTML([]byte(src)))
	b.WriteString("</div>\n")
	return b.String(), nil
}

func (r *Renderer) renderRecommend(source []byte, node ast.Node) (string, error) {
	n := node.(*mdext.Recommend)
	if !n.Closed {
		return "", fmt.Errorf("%w: :::recommend", ErrUnclosedBlock)
	}
	items := n.Items(source)
	if len(items) == 0 {
		return "", ErrNoRecommendItems
	}

	accent := r.theme
	if accent == "" {
		accent = style.DefaultThemeColor
	}
	card := style.MergeStyles(r.opts.BlockStyle(style.BlockRecommend), style.StyleOptions{
		"borderLeft": "4px solid " + accent,
	})
	titleStyle := styleString(style.StyleOptions{
		"color":          accent,
		"fontWeight":     "bold",
		"textDecoration": "none",
	})
	descStyle := styleString(style.StyleOptions{
		"margin":   "0.25em 0 0",
		"fontSize": 14,
		"color":    "#888",
	})
	itemStyle := styleString(style.StyleOptions{"padding": "0.5em 0"})

	var b strings.Builder
	b.WriteString(`<section style="` + styleString(card) + `">`)
	for _, item := range items {
		b.WriteString(`<section style="` + itemStyle + `">`)
		b.WriteString(`<a`)
		if href := r.linkHref([]byte(item.URL)); href != nil {
			b.WriteString(` href="`)
			b.Write(util.EscapeHTML(href))
			b.WriteString(`"`)
		}
		b.WriteString(` style="` + titleStyle + `">`)
		b.WriteString(r.inline(item.Title))
		b.WriteString(`</a>`)
		if item.Description != "" {
			b.WriteString(`<p style="` + descStyle + `">`)
			b.WriteString(r.inline(item.Description))
			b.WriteString(`</p>`)
		}
		b.WriteString(`</section>`)
	}
	b.WriteString("</section>\n")
	return b.String(), nil
}
