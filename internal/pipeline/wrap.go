package pipeline

import (
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// Wrap encloses inner in a section carrying the base styles. When base
// yields no declarations, inner is returned as is.
func Wrap(inner string, base style.BaseOptions) string {
	vars := style.BaseStylesToInlineVars(base)
	if vars == "" {
		return inner
	}
	return `<section style="` + string(util.EscapeHTML([]byte(vars))) + `">` + inner + "</section>"
}
