package mdext

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/mermaid"
)

// DiagramLanguage is the fence tag that always marks a diagram.
const DiagramLanguage = "mermaid"

// diagramKeywords are the first-line declarations recognised on untagged
// fences.
var diagramKeywords = []string{
	"graph",
	"flowchart",
	"sequenceDiagram",
	"sequence",
	"classDiagram",
	"stateDiagram",
	"stateDiagram-v2",
	"erDiagram",
	"gantt",
	"pie",
	"journey",
	"gitGraph",
	"mindmap",
	"timeline",
	"quadrantChart",
}

// KindDiagram is the NodeKind of diagram blocks produced by the transformer.
var KindDiagram = (&mermaid.Block{}).Kind()

// IsDiagramSource reports whether the first non-blank line of src starts with
// a diagram keyword.
func IsDiagramSource(src string) bool {
	first, _ := splitFirstLine(src)
	if first == "" {
		return false
	}
	head := strings.Fields(first)[0]
	for _, kw := range diagramKeywords {
		if head == kw {
			return true
		}
	}
	return false
}

// NormalizeDiagram rewrites the first line of a diagram into its canonical
// declaration: `graph` or `flowchart` without a direction becomes `graph TD`
// and `sequence` becomes `sequenceDiagram`.
func NormalizeDiagram(src string) string {
	first, rest := splitFirstLine(src)
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return strings.TrimSpace(src)
	}

	switch {
	case (fields[0] == "graph" || fields[0] == "flowchart") && len(fields) == 1:
		first = "graph TD"
	case fields[0] == "sequence":
		fields[0] = "sequenceDiagram"
		first = strings.Join(fields, " ")
	}

	if rest == "" {
		return first
	}
	return first + "\n" + rest
}

// splitFirstLine returns the first non-blank line, trimmed, and the remainder
// with trailing whitespace removed.
func splitFirstLine(src string) (string, string) {
	src = strings.TrimLeft(src, " \t\r\n")
	src = strings.TrimRight(src, " \t\r\n")
	first, rest, _ := strings.Cut(src, "\n")
	return strings.TrimSpace(first), rest
}

type diagramTransformer struct{}

// NewDiagramTransformer returns an ASTTransformer that turns fenced code
// blocks tagged `mermaid`, or untagged blocks whose first line is a diagram
// declaration, into mermaid.Block nodes.
func NewDiagramTransformer() parser.ASTTransformer {
	return &diagramTransformer{}
}

func (t *diagramTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	var blocks []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		cb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if isDiagramBlock(cb, source) {
			blocks = append(blocks, cb)
		}
		return ast.WalkSkipChildren, nil
	})

	for _, cb := range blocks {
		diagram := &mermaid.Block{}
		diagram.SetLines(cb.Lines())
		diagram.SetBlankPreviousLines(cb.HasBlankPreviousLines())
		parent := cb.Parent()
		parent.ReplaceChild(parent, cb, diagram)
	}
}

func isDiagramBlock(cb *ast.FencedCodeBlock, source []byte) bool {
	lang := string(bytes.ToLower(cb.Language(source)))
	switch lang {
	case DiagramLanguage:
		return true
	case "":
		return IsDiagramSource(string(cb.Lines().Value(source)))
	}
	return false
}
