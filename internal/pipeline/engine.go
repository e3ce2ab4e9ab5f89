package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/mdext"
	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	Convert(ctx context.Context, markdown string) (string, error)
}

// Deps are the collaborators an Engine renders with. Zero values are valid:
// a nil Math leaves formulas as source text, a nil Highlighter uses the
// chroma highlighter and a nil Preprocessor passes input through.
type Deps struct {
	Logger       *log.Logger
	Math         MathRenderer
	Highlighter  CodeHighlighter
	Preprocessor MarkdownPreprocessor

	// UnsafeHTML passes raw HTML through instead of omitting it.
	UnsafeHTML bool
	// AssetDir resolves relative image and link paths to file:// URLs.
	AssetDir string
	// NoDiagrams renders diagram fences as code blocks.
	NoDiagrams bool
}

// Engine is a goldmark instance configured for one set of options. It is
// built per render call and holds no state shared with other engines.
type Engine struct {
	md       goldmark.Markdown
	opts     style.RendererOptions
	pre      MarkdownPreprocessor
	logger   *log.Logger
	renderer *Renderer
}

var _ HTMLConverter = (*Engine)(nil)

// NewEngine creates an Engine rendering with opts.
func NewEngine(opts style.RendererOptions, deps Deps) *Engine {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	pre := deps.Preprocessor
	if pre == nil {
		pre = PassthroughPreprocessor{}
	}

	nr := NewRenderer(opts, deps)
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			&mdext.Extender{NoDiagrams: deps.NoDiagrams},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(nr, rendererPriority)),
		),
	)

	e := &Engine{
		md:       md,
		opts:     opts,
		pre:      pre,
		logger:   deps.Logger,
		renderer: nr,
	}
	nr.inline = e.RenderInline
	return e
}

// Convert renders markdown to a styled HTML fragment wrapped in the base
// container. Supports context cancellation via goroutine + select pattern
// since goldmark doesn't natively support context.
func (e *Engine) Convert(ctx context.Context, markdown string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, r)}
			}
		}()

		src := e.pre.PreprocessMarkdown(ctx, markdown)
		var buf bytes.Buffer
		if err := e.md.Convert([]byte(src), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: Wrap(buf.String(), e.opts.Base)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// RenderInline renders src as inline Markdown, without the enclosing
// paragraph. Input that does not parse to a single paragraph is returned
// escaped.
func (e *Engine) RenderInline(src string) string {
	source := []byte(src)
	escaped := string(util.EscapeHTML(source))

	doc := e.md.Parser().Parse(text.NewReader(source))
	para := doc.FirstChild()
	if para == nil {
		return ""
	}
	if para.Kind() != ast.KindParagraph || para.NextSibling() != nil {
		return escaped
	}

	var buf bytes.Buffer
	for c := para.FirstChild(); c != nil; c = c.NextSibling() {
		if err := e.md.Renderer().Render(&buf, source, c); err != nil {
			e.logger.Warn("inline render failed", "err", err)
			return escaped
		}
	}
	return buf.String()
}
