package mdext

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var mathDelim = []byte("$$")

// KindMathBlock is the NodeKind of a display formula block.
var KindMathBlock = ast.NewNodeKind("MathBlock")

// MathBlock is a `$$ ... $$` display formula. Lines holds the formula body;
// the raw lines, delimiters included, are kept for the fallback output.
type MathBlock struct {
	ast.BaseBlock

	// Closed is false when the enclosing container ended before the
	// closing delimiter.
	Closed bool

	raw text.Segments
}

// NewMathBlock returns an empty MathBlock.
func NewMathBlock() *MathBlock {
	return &MathBlock{}
}

// Kind implements ast.Node.
func (n *MathBlock) Kind() ast.NodeKind { return KindMathBlock }

// IsRaw implements ast.Node.
func (n *MathBlock) IsRaw() bool { return true }

// Formula returns the formula body without delimiters.
func (n *MathBlock) Formula(source []byte) []byte {
	return bytes.TrimSpace(joinLines(n.Lines(), source))
}

// Raw returns the block as written, delimiters included.
func (n *MathBlock) Raw(source []byte) []byte {
	return joinLines(&n.raw, source)
}

// Dump implements ast.Node.
func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Closed":  boolString(n.Closed),
		"Formula": string(n.Formula(source)),
	}, nil)
}

type mathBlockParser struct{}

// NewMathBlockParser returns a BlockParser for `$$` formula blocks. A block
// may open and close on one line, or span lines until a line ending in `$$`.
// Without such a line the opening `$$` stays paragraph text.
func NewMathBlockParser() parser.BlockParser {
	return &mathBlockParser{}
}

func (p *mathBlockParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *mathBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || !bytes.HasPrefix(line[pos:], mathDelim) {
		return nil, parser.NoChildren
	}

	content := trimEOL(line)
	node := NewMathBlock()
	node.raw.Append(lineSegment(segment, pos, len(content)))

	body := pos + len(mathDelim)
	if i := bytes.Index(content[body:], mathDelim); i >= 0 {
		// Trailing text after a one-line formula makes it inline content.
		if !util.IsBlank(content[body+i+len(mathDelim):]) {
			return nil, parser.NoChildren
		}
		node.Lines().Append(lineSegment(segment, body, body+i))
		node.Closed = true
	} else {
		// Without a closing line the `$$` is plain paragraph text.
		if !hasClosingLine(reader.Source(), segment.Start, closesMathBlock) {
			return nil, parser.NoChildren
		}
		if !util.IsBlank(content[body:]) {
			node.Lines().Append(lineSegment(segment, body, len(content)))
		}
	}

	reader.AdvanceToEOL()
	return node, parser.NoChildren
}

func (p *mathBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	n := node.(*MathBlock)
	if n.Closed {
		return parser.Close
	}

	line, segment := reader.PeekLine()
	content := trimEOL(line)
	n.raw.Append(lineSegment(segment, 0, len(content)))

	trimmed := util.TrimRightSpace(content)
	if bytes.HasSuffix(trimmed, mathDelim) {
		end := len(trimmed) - len(mathDelim)
		if !util.IsBlank(trimmed[:end]) {
			n.Lines().Append(lineSegment(segment, 0, end))
		}
		n.Closed = true
		reader.AdvanceToEOL()
		return parser.Continue | parser.NoChildren
	}

	n.Lines().Append(lineSegment(segment, 0, len(content)))
	reader.AdvanceToEOL()
	return parser.Continue | parser.NoChildren
}

func (p *mathBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *mathBlockParser) CanInterruptParagraph() bool {
	return true
}

func (p *mathBlockParser) CanAcceptIndentedLine() bool {
	return false
}

// KindMathInline is the NodeKind of an inline formula.
var KindMathInline = ast.NewNodeKind("MathInline")

// MathInline is a `$...$` formula inside a line of text. Display is set for
// the `$$...$$` form, which renders in display mode.
type MathInline struct {
	ast.BaseInline

	Display bool

	formula text.Segment
	raw     text.Segment
}

// Kind implements ast.Node.
func (n *MathInline) Kind() ast.NodeKind { return KindMathInline }

// Formula returns the formula without delimiters.
func (n *MathInline) Formula(source []byte) []byte {
	return n.formula.Value(source)
}

// Raw returns the formula as written, delimiters included.
func (n *MathInline) Raw(source []byte) []byte {
	return n.raw.Value(source)
}

// Dump implements ast.Node.
func (n *MathInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Display": boolString(n.Display),
		"Formula": string(n.Formula(source)),
	}, nil)
}

type mathInlineParser struct{}

// NewMathInlineParser returns an InlineParser for `$...$` and `$$...$$`
// formulas. A single-dollar formula is non-greedy, stays on one line and is
// never adjacent to another `$`; `\$` does not close it.
func NewMathInlineParser() parser.InlineParser {
	return &mathInlineParser{}
}

func (p *mathInlineParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *mathInlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if block.PrecendingCharacter() == '$' {
		return nil
	}
	line, segment := block.PeekLine()

	display := bytes.HasPrefix(line, mathDelim)
	open := 1
	if display {
		open = len(mathDelim)
	}

	end := closingDollar(line, open, display)
	if end < 0 {
		return nil
	}

	node := &MathInline{
		Display: display,
		formula: text.NewSegment(segment.Start+open, segment.Start+end),
		raw:     text.NewSegment(segment.Start, segment.Start+end+open),
	}
	block.Advance(end + open)
	return node
}

// closingDollar returns the index of the closing delimiter in line, or -1.
// The formula must be non-empty.
func closingDollar(line []byte, open int, display bool) int {
	for i := open; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '\n':
			return -1
		case '$':
			if display {
				if i+1 < len(line) && line[i+1] == '$' && i > open {
					return i
				}
				return -1
			}
			if i == open {
				return -1
			}
			if i+1 < len(line) && line[i+1] == '$' {
				return -1
			}
			return i
		}
	}
	return -1
}

func closesMathBlock(line []byte) bool {
	return bytes.HasSuffix(line, mathDelim)
}

// hasClosingLine reports whether any line after the one containing from
// satisfies closes. Lines are passed without indentation, blockquote
// markers or trailing space.
func hasClosingLine(source []byte, from int, closes func(line []byte) bool) bool {
	next := bytes.IndexByte(source[from:], '\n')
	if next < 0 {
		return false
	}
	rest := source[from+next+1:]
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}
		if closes(stripContainerPrefix(line)) {
			return true
		}
	}
	return false
}

func stripContainerPrefix(line []byte) []byte {
	line = util.TrimLeftSpace(line)
	for len(line) > 0 && line[0] == '>' {
		line = util.TrimLeftSpace(line[1:])
	}
	return util.TrimRightSpace(line)
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}

// lineSegment maps line[from:to] back to a source segment, accounting for
// the padding the reader inserts for expanded tabs.
func lineSegment(segment text.Segment, from, to int) text.Segment {
	start := max(segment.Start-segment.Padding+from, segment.Start)
	stop := max(segment.Start-segment.Padding+to, start)
	return text.NewSegment(start, stop)
}

func joinLines(lines *text.Segments, source []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			buf.WriteByte('\n')
		}
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
