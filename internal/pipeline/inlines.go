package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

func (r *Renderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	value := n.Value(source)
	if n.IsRaw() {
		html.DefaultWriter.RawWrite(w, value)
		return ast.WalkContinue, nil
	}

	html.DefaultWriter.Write(w, value)
	switch {
	case n.HardLineBreak():
		_, _ = w.WriteString("<br>\n")
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderString(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.String)
	switch {
	case n.IsCode():
		_, _ = w.Write(n.Value)
	case n.IsRaw():
		html.DefaultWriter.RawWrite(w, n.Value)
	default:
		html.DefaultWriter.Write(w, n.Value)
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code>")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<code")
	writeStyle(w, r.opts.InlineStyle(style.InlineCodespan))
	_ = w.WriteByte('>')
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		var value []byte
		switch t := c.(type) {
		case *ast.Text:
			value = t.Value(source)
		case *ast.String:
			value = t.Value
		default:
			continue
		}
		if bytes.HasSuffix(value, []byte("\n")) {
			html.DefaultWriter.RawWrite(w, value[:len(value)-1])
			_ = w.WriteByte(' ')
			continue
		}
		html.DefaultWriter.RawWrite(w, value)
	}
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	tag := "em"
	if n.Level == 2 {
		tag = "strong"
	}
	if !entering {
		_, _ = w.WriteString("</" + tag + ">")
		return ast.WalkContinue, nil
	}

	var s style.StyleOptions
	if n.Level == 2 {
		s = r.withThemeColor(r.opts.InlineStyle(style.InlineStrong))
	} else {
		s = r.opts.InlineStyle(style.InlineEm)
	}
	_, _ = w.WriteString("<" + tag)
	writeStyle(w, s)
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

// linkHref returns the escaped href for dest, or nil when dest is unsafe.
func (r *Renderer) linkHref(dest []byte) []byte {
	if html.IsDangerousURL(dest) {
		return nil
	}
	resolved := ResolveAssetURL(string(dest), r.assetDir)
	return util.URLEscape([]byte(resolved), true)
}

func (r *Renderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Link)
	_, _ = w.WriteString("<a")
	if href := r.linkHref(n.Destination); href != nil {
		writeAttr(w, "href", href)
	}
	if len(n.Title) > 0 {
		writeAttr(w, "title", n.Title)
	}
	writeStyle(w, r.opts.InlineStyle(style.InlineLink))
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *Renderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.AutoLink)
	url := n.URL(source)
	label := n.Label(source)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		url = append([]byte("mailto:"), url...)
	}

	_, _ = w.WriteString("<a")
	if href := r.linkHref(url); href != nil {
		writeAttr(w, "href", href)
	}
	writeStyle(w, r.opts.InlineStyle(style.InlineLink))
	_ = w.WriteByte('>')
	_, _ = w.Write(util.EscapeHTML(label))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

// imageForced are the image properties no template can override.
var imageForced = style.StyleOptions{
	"maxWidth": "100%",
	"display":  "block",
	"margin":   "0.1em auto 0.5em",
}

func (r *Renderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Image)
	_, _ = w.WriteString("<img")
	if src := r.linkHref(n.Destination); src != nil {
		writeAttr(w, "src", src)
	}
	writeAttr(w, "alt", plainText(n, source))
	if len(n.Title) > 0 {
		writeAttr(w, "title", n.Title)
	}
	writeStyle(w, style.MergeStyles(r.opts.BlockStyle(style.BlockImage), imageForced))
	_ = w.WriteByte('>')
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	if !r.unsafeHTML {
		_, _ = w.WriteString("<!-- raw HTML omitted -->")
		return ast.WalkSkipChildren, nil
	}

	n := node.(*ast.RawHTML)
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		_, _ = w.Write(seg.Value(source))
	}
	return ast.WalkSkipChildren, nil
}

// plainText collects the text content of n's descendants.
func plainText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}
