package pipeline

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/highlight"
	"github.com/tianyaxiang/neurapress-sub000/internal/mdext"
	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// rendererPriority places the styled renderer ahead of goldmark's HTML
// renderer (1000) and the extension renderers (500).
const rendererPriority = 100

// MathRenderer converts a LaTeX formula to HTML.
type MathRenderer interface {
	Render(formula string, display bool) (string, error)
}

// CodeHighlighter renders a code block body. ok=false means the language is
// not supported and the caller should emit the escaped code.
type CodeHighlighter interface {
	Highlight(code, lang, themeID string) (html string, ok bool)
}

// Renderer is a goldmark NodeRenderer that emits every node with inline
// styles resolved from a RendererOptions value.
type Renderer struct {
	opts      style.RendererOptions
	theme     string
	codeTheme highlight.CodeTheme

	logger      *log.Logger
	math        MathRenderer
	highlighter CodeHighlighter
	unsafeHTML  bool
	assetDir    string

	// inline renders a Markdown fragment as inline HTML.
	inline func(src string) string

	// diagrams numbers diagram placeholders within one document.
	diagrams int
}

var _ renderer.NodeRenderer = (*Renderer)(nil)

// NewRenderer creates a Renderer for opts. Nil dependencies are replaced by
// inert defaults.
func NewRenderer(opts style.RendererOptions, deps Deps) *Renderer {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hl := deps.Highlighter
	if hl == nil {
		hl = highlight.New(logger)
	}
	return &Renderer{
		opts:        opts,
		theme:       opts.Base.ThemeColor,
		codeTheme:   highlight.Lookup(opts.CodeTheme),
		logger:      logger,
		math:        deps.Math,
		highlighter: hl,
		unsafeHTML:  deps.UnsafeHTML,
		assetDir:    deps.AssetDir,
		inline:      func(src string) string { return string(util.EscapeHTML([]byte(src))) },
	}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	// blocks
	reg.Register(ast.KindDocument, r.renderDocument)
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindTextBlock, r.renderTextBlock)
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)

	// inlines
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindString, r.renderString)

	// GFM and footnotes
	reg.Register(extast.KindTable, r.renderTable)
	reg.Register(extast.KindTableHeader, r.renderTableHeader)
	reg.Register(extast.KindTableRow, r.renderTableRow)
	reg.Register(extast.KindTableCell, r.renderTableCell)
	reg.Register(extast.KindStrikethrough, r.renderStrikethrough)
	reg.Register(extast.KindTaskCheckBox, r.renderTaskCheckBox)
	reg.Register(extast.KindFootnoteLink, r.renderFootnoteLink)
	reg.Register(extast.KindFootnoteBacklink, r.renderFootnoteBacklink)
	reg.Register(extast.KindFootnote, r.renderFootnote)
	reg.Register(extast.KindFootnoteList, r.renderFootnoteList)

	// custom syntaxes
	reg.Register(mdext.KindMathBlock, r.extension(r.renderMathBlock))
	reg.Register(mdext.KindMathInline, r.extension(r.renderMathInline))
	reg.Register(mdext.KindRecommend, r.extension(r.renderRecommend))
	reg.Register(mdext.KindDiagram, r.extension(r.renderDiagram))
}

// withThemeColor sets the theme color on s unless s has its own color.
func (r *Renderer) withThemeColor(s style.StyleOptions) style.StyleOptions {
	if s.Color() == "" && r.theme != "" {
		s["color"] = r.theme
	}
	return s
}

// writeStyle writes a style attribute, or nothing when s has no
// declarations.
func writeStyle(w util.BufWriter, s style.StyleOptions) {
	css := style.ToInlineStyleString(s)
	if css == "" {
		return
	}
	_, _ = w.WriteString(` style="`)
	_, _ = w.Write(util.EscapeHTML([]byte(css)))
	_ = w.WriteByte('"')
}

// writeAttr writes ` name="value"` with value escaped.
func writeAttr(w util.BufWriter, name string, value []byte) {
	_ = w.WriteByte(' ')
	_, _ = w.WriteString(name)
	_, _ = w.WriteString(`="`)
	_, _ = w.Write(util.EscapeHTML(value))
	_ = w.WriteByte('"')
}

// styleString returns the escaped attribute value for s.
func styleString(s style.StyleOptions) string {
	return string(util.EscapeHTML([]byte(style.ToInlineStyleString(s))))
}
