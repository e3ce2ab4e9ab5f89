package pipeline

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

func (r *Renderer) renderTable(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<table")
		writeStyle(w, r.opts.BlockStyle(style.BlockTable))
		_, _ = w.WriteString(">\n")
		return ast.WalkContinue, nil
	}

	if _, ok := node.LastChild().(*extast.TableRow); ok {
		_, _ = w.WriteString("</tbody>\n")
	}
	_, _ = w.WriteString("</table>\n")
	return ast.WalkContinue, nil
}

func (r *Renderer) renderTableHeader(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<thead>\n<tr>\n")
	} else {
		_, _ = w.WriteString("</tr>\n</thead>\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderTableRow(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</tr>\n")
		return ast.WalkContinue, nil
	}

	if prev := node.PreviousSibling(); prev == nil || prev.Kind() == extast.KindTableHeader {
		_, _ = w.WriteString("<tbody>\n")
	}
	_, _ = w.WriteString("<tr>\n")
	return ast.WalkContinue, nil
}

func (r *Renderer) renderTableCell(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*extast.TableCell)
	tag, kind := "td", style.BlockTD
	if _, ok := n.Parent().(*extast.TableHeader); ok {
		tag, kind = "th", style.BlockTH
	}
	if !entering {
		_, _ = w.WriteString("</" + tag + ">\n")
		return ast.WalkContinue, nil
	}

	s := r.opts.BlockStyle(kind)
	if n.Alignment != extast.AlignNone {
		s["textAlign"] = n.Alignment.String()
	}
	_, _ = w.WriteString("<" + tag)
	writeStyle(w, s)
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *Renderer) renderStrikethrough(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<del")
		writeStyle(w, r.opts.InlineStyle(style.InlineDel))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</del>")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderTaskCheckBox(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*extast.TaskCheckBox)
	_, _ = w.WriteString(`<input type="checkbox" disabled`)
	if n.IsChecked {
		_, _ = w.WriteString(" checked")
	}
	writeStyle(w, r.opts.InlineStyle(style.InlineCheckbox))
	_, _ = w.WriteString("> ")
	return ast.WalkContinue, nil
}

func footnoteRefID(index, refIndex int) string {
	id := "fnref"
	if refIndex > 0 {
		id += strconv.Itoa(refIndex)
	}
	return id + ":" + strconv.Itoa(index)
}

func (r *Renderer) renderFootnoteLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*extast.FootnoteLink)
	is := strconv.Itoa(n.Index)
	_, _ = w.WriteString(`<sup id="` + footnoteRefID(n.Index, n.RefIndex) + `"`)
	writeStyle(w, r.withThemeColor(r.opts.InlineStyle(style.InlineFootnote)))
	_, _ = w.WriteString(`><a href="#fn:` + is + `"`)
	writeStyle(w, style.StyleOptions{"color": "inherit", "textDecoration": "none"})
	_, _ = w.WriteString(`>[` + is + `]</a></sup>`)
	return ast.WalkContinue, nil
}

func (r *Renderer) renderFootnoteBacklink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*extast.FootnoteBacklink)
	_, _ = w.WriteString(`&#160;<a href="#` + footnoteRefID(n.Index, n.RefIndex) + `"`)
	writeStyle(w, r.withThemeColor(style.StyleOptions{"textDecoration": "none"}))
	_, _ = w.WriteString(`>&#x21a9;&#xfe0e;</a>`)
	return ast.WalkContinue, nil
}

func (r *Renderer) renderFootnote(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</li>\n")
		return ast.WalkContinue, nil
	}

	n := node.(*extast.Footnote)
	_, _ = w.WriteString(`<li id="fn:` + strconv.Itoa(n.Index) + `"`)
	writeStyle(w, r.opts.InlineStyle(style.InlineListItem))
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}

func (r *Renderer) renderFootnoteList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</ol>\n</section>\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<section")
	writeStyle(w, r.opts.BlockStyle(style.BlockFootnotes))
	_, _ = w.WriteString(">\n<hr")
	writeStyle(w, r.opts.BlockStyle(style.BlockHR))
	_, _ = w.WriteString(">\n<ol")
	writeStyle(w, style.StyleOptions{"paddingLeft": "1.5em"})
	_, _ = w.WriteString(">\n")
	return ast.WalkContinue, nil
}
