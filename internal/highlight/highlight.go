// Package highlight renders source code as inline-styled HTML with line
// numbers, using chroma lexers and a fixed registry of color themes.
package highlight

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/log"

	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// Line number gutter geometry.
const (
	digitWidthPx   = 8
	gutterMarginPx = 12
)

// categories maps chroma token types to palette categories. Lookups walk the
// exact type, then its sub-category, then its category.
var categories = map[chroma.TokenType]Category{
	chroma.Comment:         CategoryComment,
	chroma.Keyword:         CategoryKeyword,
	chroma.KeywordType:     CategoryClass,
	chroma.KeywordConstant: CategoryNumber,
	chroma.LiteralString:   CategoryString,
	chroma.LiteralNumber:   CategoryNumber,
	chroma.NameFunction:    CategoryFunction,
	chroma.NameBuiltin:     CategoryFunction,
	chroma.NameDecorator:   CategoryFunction,
	chroma.NameClass:       CategoryClass,
	chroma.NameException:   CategoryClass,
	chroma.NameTag:         CategoryKeyword,
	chroma.NameAttribute:   CategoryVariable,
	chroma.NameVariable:    CategoryVariable,
	chroma.NameConstant:    CategoryNumber,
	chroma.Operator:        CategoryOperator,
}

// CategoryOf returns the palette category for a chroma token type.
func CategoryOf(t chroma.TokenType) Category {
	for _, tt := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if c, ok := categories[tt]; ok {
			return c
		}
	}
	return CategoryNone
}

// Highlighter renders code blocks. It is safe for concurrent use.
type Highlighter struct {
	logger *log.Logger
}

// New creates a Highlighter. A nil logger discards diagnostics.
func New(logger *log.Logger) *Highlighter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Highlighter{logger: logger}
}

// Highlight renders code in lang using the theme registered under themeID.
// It returns ok=false when lang has no grammar or tokenization fails; the
// caller then emits the escaped code unchanged.
func (h *Highlighter) Highlight(code, lang, themeID string) (out string, ok bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "", false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			h.logger.Warn("highlight failed", "lang", lang, "err", fmt.Sprint(r))
			out, ok = "", false
		}
	}()

	iter, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		h.logger.Warn("highlight failed", "lang", lang, "err", err)
		return "", false
	}

	return renderLines(splitLines(iter.Tokens(), sourceLineCount(code)), Lookup(themeID)), true
}

// sourceLineCount counts lines the way they are displayed: a single trailing
// newline does not start a new line.
func sourceLineCount(code string) int {
	return strings.Count(strings.TrimSuffix(code, "\n"), "\n") + 1
}

// splitLines breaks a token stream at newlines. Lexers may append a trailing
// newline, so the result is truncated to n lines.
func splitLines(tokens []chroma.Token, n int) [][]chroma.Token {
	lines := make([][]chroma.Token, 1, n)
	for _, tok := range tokens {
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], chroma.Token{Type: tok.Type, Value: part})
		}
	}
	for len(lines) < n {
		lines = append(lines, nil)
	}
	return lines[:n]
}

func renderLines(lines [][]chroma.Token, theme CodeTheme) string {
	gutter := style.ToInlineStyleString(LineNumberStyle(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(`<span class="code-line"><span class="line-number" style="`)
		b.WriteString(gutter)
		b.WriteString(`">`)
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(`</span>`)
		for _, tok := range line {
			writeToken(&b, tok, theme)
		}
		b.WriteString(`</span>`)
	}
	return b.String()
}

func writeToken(b *strings.Builder, tok chroma.Token, theme CodeTheme) {
	text := html.EscapeString(tok.Value)
	color := theme.Palette.Color(CategoryOf(tok.Type))
	if color == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(`<span style="color: `)
	b.WriteString(color)
	b.WriteString(`">`)
	b.WriteString(text)
	b.WriteString(`</span>`)
}

// LineNumberWidth returns the gutter width in pixels for a block of
// lineCount lines.
func LineNumberWidth(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))*digitWidthPx + gutterMarginPx
}

// LineNumberStyle returns the style of the line number gutter.
func LineNumberStyle(lineCount int) style.StyleOptions {
	return style.StyleOptions{
		"display":          "inline-block",
		"width":            LineNumberWidth(lineCount),
		"textAlign":        "right",
		"paddingRight":     8,
		"opacity":          0.5,
		"userSelect":       "none",
		"WebkitUserSelect": "none",
	}
}
