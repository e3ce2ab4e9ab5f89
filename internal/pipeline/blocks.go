package pipeline

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// Window controls drawn in the code block title bar.
var titleBarDots = []string{"#ff5f56", "#ffbd2e", "#27c93f"}

func (r *Renderer) renderDocument(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.diagrams = 0
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	tag := "h" + strconv.Itoa(n.Level)
	if !entering {
		_, _ = w.WriteString("</" + tag + ">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<" + tag)
	if id, ok := n.AttributeString("id"); ok {
		if b, ok := id.([]byte); ok {
			writeAttr(w, "id", b)
		}
	}
	writeStyle(w, r.withThemeColor(r.opts.BlockStyle(tag)))
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

// paragraphStyle is the base font settings overlaid by block.p.
func (r *Renderer) paragraphStyle() style.StyleOptions {
	return style.MergeStyles(style.StyleOptions{
		"fontSize":   r.opts.Base.FontSize,
		"lineHeight": r.opts.Base.LineHeight,
	}, r.opts.Block[style.BlockParagraph])
}

func (r *Renderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<p")
		writeStyle(w, r.paragraphStyle())
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderTextBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering && node.NextSibling() != nil && node.FirstChild() != nil {
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderBlockquote(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</blockquote>\n")
		return ast.WalkContinue, nil
	}

	s := r.opts.BlockStyle(style.BlockQuote)
	if r.theme != "" {
		s["borderLeftColor"] = r.theme
	}
	_, _ = w.WriteString("<blockquote")
	writeStyle(w, s)
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}

func (r *Renderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	var lang string
	if fcb, ok := node.(*ast.FencedCodeBlock); ok {
		lang = string(fcb.Language(source))
	}
	code := strings.TrimSuffix(string(node.Lines().Value(source)), "\n")

	pre := r.opts.BlockStyle(style.BlockCodePre)
	preStyle := style.MergeStyles(style.StyleOptions{
		"background": r.codeTheme.Background,
		"color":      r.codeTheme.Foreground,
	}, pre)
	delete(preStyle, style.TitleBarKey)

	_, _ = w.WriteString("<pre")
	writeStyle(w, preStyle)
	_ = w.WriteByte('>')

	if pre.Flag(style.TitleBarKey, true) {
		writeTitleBar(w)
	}

	_, _ = w.WriteString("<code")
	if lang != "" {
		writeAttr(w, "class", []byte("language-"+lang))
	}
	_ = w.WriteByte('>')

	if out, ok := r.highlighter.Highlight(code, lang, r.codeTheme.ID); ok {
		_, _ = w.WriteString(out)
	} else {
		_, _ = w.Write(util.EscapeHTML([]byte(code)))
	}
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkContinue, nil
}

func writeTitleBar(w util.BufWriter) {
	_, _ = w.WriteString(`<span style="`)
	_, _ = w.WriteString(styleString(style.StyleOptions{
		"display":      "flex",
		"gap":          6,
		"marginBottom": 10,
	}))
	_, _ = w.WriteString(`">`)
	for _, color := range titleBarDots {
		_, _ = w.WriteString(`<span style="`)
		_, _ = w.WriteString(styleString(style.StyleOptions{
			"display":      "inline-block",
			"width":        12,
			"height":       12,
			"borderRadius": "50%",
			"background":   color,
		}))
		_, _ = w.WriteString(`"></span>`)
	}
	_, _ = w.WriteString("</span>\n")
}

func (r *Renderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	if !r.unsafeHTML {
		_, _ = w.WriteString("<!-- raw HTML omitted -->\n")
		return ast.WalkSkipChildren, nil
	}

	n := node.(*ast.HTMLBlock)
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		_, _ = w.Write(line.Value(source))
	}
	if n.HasClosure() {
		_, _ = w.Write(n.ClosureLine.Value(source))
	}
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	tag, kind, marker := "ul", style.BlockUL, "disc"
	if n.IsOrdered() {
		tag, kind, marker = "ol", style.BlockOL, "decimal"
	}
	if !entering {
		_, _ = w.WriteString("</" + tag + ">\n")
		return ast.WalkContinue, nil
	}

	s := style.MergeStyles(r.opts.BlockStyle(kind), style.StyleOptions{
		"listStyleType": marker,
		"paddingLeft":   "1.5em",
	})

	_, _ = w.WriteString("<" + tag)
	if n.IsOrdered() && n.Start != 1 {
		writeAttr(w, "start", []byte(strconv.Itoa(n.Start)))
	}
	writeStyle(w, s)
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}

func (r *Renderer) renderListItem(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</li>\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<li")
	writeStyle(w, r.opts.InlineStyle(style.InlineListItem))
	_ = w.WriteByte('>')
	if fc := node.FirstChild(); fc != nil {
		if _, ok := fc.(*ast.TextBlock); !ok {
			_ = w.WriteByte('\n')
		}
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderThematicBreak(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<hr")
		writeStyle(w, r.opts.BlockStyle(style.BlockHR))
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}
