// Package mdext adds the custom Markdown syntaxes to goldmark: `$$` formula
// blocks, `$...$` inline formulas, diagram fences and `:::recommend` cards.
//
// Only parsing lives here. The nodes carry their raw text so the renderer can
// fall back to it when a formula or card cannot be rendered.
package mdext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

// Parser priorities. Goldmark runs lower values first; the block parsers
// must claim their lines before paragraphs and fenced code.
const (
	blockPriority       = 100
	inlinePriority      = 150
	transformerPriority = 100
)

// Extender registers the custom syntaxes on a goldmark instance.
type Extender struct {
	// NoDiagrams keeps diagram fences as ordinary code blocks.
	NoDiagrams bool
}

var _ goldmark.Extender = (*Extender)(nil)

// Extend implements goldmark.Extender.
func (e *Extender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(NewMathBlockParser(), blockPriority),
			util.Prioritized(NewRecommendParser(), blockPriority),
		),
		parser.WithInlineParsers(
			util.Prioritized(NewMathInlineParser(), inlinePriority),
		),
	)
	if !e.NoDiagrams {
		m.Parser().AddOptions(parser.WithASTTransformers(
			util.Prioritized(NewDiagramTransformer(), transformerPriority),
		))
	}
}
