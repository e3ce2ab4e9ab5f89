package mdext

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	recommendOpen  = []byte(":::recommend")
	recommendClose = []byte(":::")
)

// recommendItemRE matches `[Title - Description](url)`; the description is
// optional.
var recommendItemRE = regexp.MustCompile(`^\[([^\]]+?)(?:\s+-\s+([^\]]+?))?\]\(\s*([^\s)]+)\s*\)$`)

// KindRecommend is the NodeKind of a recommendation card block.
var KindRecommend = ast.NewNodeKind("Recommend")

// Recommend is a `:::recommend ... :::` block. Lines holds the body lines;
// the raw lines, fences included, are kept for the fallback output.
type Recommend struct {
	ast.BaseBlock

	// Closed is false when the enclosing container ended before the
	// closing fence.
	Closed bool

	raw text.Segments
}

// Kind implements ast.Node.
func (n *Recommend) Kind() ast.NodeKind { return KindRecommend }

// IsRaw implements ast.Node.
func (n *Recommend) IsRaw() bool { return true }

// Raw returns the block as written, fences included.
func (n *Recommend) Raw(source []byte) []byte {
	return joinLines(&n.raw, source)
}

// Items returns the card items parsed from the body. Lines that are not a
// well-formed link are dropped.
func (n *Recommend) Items(source []byte) []RecommendItem {
	var items []RecommendItem
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		if item, ok := ParseRecommendItem(string(seg.Value(source))); ok {
			items = append(items, item)
		}
	}
	return items
}

// Dump implements ast.Node.
func (n *Recommend) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Closed": boolString(n.Closed),
	}, nil)
}

// RecommendItem is one card entry.
type RecommendItem struct {
	Title       string
	Description string
	URL         string
}

// ParseRecommendItem parses a single `[Title - Description](url)` line.
func ParseRecommendItem(line string) (RecommendItem, bool) {
	m := recommendItemRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return RecommendItem{}, false
	}
	return RecommendItem{
		Title:       strings.TrimSpace(m[1]),
		Description: strings.TrimSpace(m[2]),
		URL:         m[3],
	}, true
}

func closesRecommend(line []byte) bool {
	return bytes.Equal(line, recommendClose)
}

type recommendParser struct{}

// NewRecommendParser returns a BlockParser for `:::recommend` card blocks.
// The block only opens when a `:::` line follows.
func NewRecommendParser() parser.BlockParser {
	return &recommendParser{}
}

func (p *recommendParser) Trigger() []byte {
	return []byte{':'}
}

func (p *recommendParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 {
		return nil, parser.NoChildren
	}
	content := trimEOL(line)
	if !bytes.Equal(util.TrimRightSpace(content[pos:]), recommendOpen) {
		return nil, parser.NoChildren
	}

	if !hasClosingLine(reader.Source(), segment.Start, closesRecommend) {
		return nil, parser.NoChildren
	}

	node := &Recommend{}
	node.raw.Append(lineSegment(segment, pos, len(content)))
	reader.AdvanceToEOL()
	return node, parser.NoChildren
}

func (p *recommendParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	n := node.(*Recommend)
	if n.Closed {
		return parser.Close
	}

	line, segment := reader.PeekLine()
	content := trimEOL(line)
	n.raw.Append(lineSegment(segment, 0, len(content)))
	reader.AdvanceToEOL()

	if bytes.Equal(bytes.TrimSpace(content), recommendClose) {
		n.Closed = true
		return parser.Continue | parser.NoChildren
	}
	if !util.IsBlank(content) {
		n.Lines().Append(lineSegment(segment, 0, len(content)))
	}
	return parser.Continue | parser.NoChildren
}

func (p *recommendParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *recommendParser) CanInterruptParagraph() bool {
	return true
}

func (p *recommendParser) CanAcceptIndentedLine() bool {
	return false
}
