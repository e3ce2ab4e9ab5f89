package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultThemeID is used when a theme id is unknown.
const DefaultThemeID = "github"

// Category is a coarse token class a theme assigns a color to.
type Category int

// Token categories.
const (
	CategoryNone Category = iota
	CategoryComment
	CategoryKeyword
	CategoryString
	CategoryNumber
	CategoryFunction
	CategoryClass
	CategoryVariable
	CategoryOperator
)

// Palette maps token categories to colors.
type Palette struct {
	Comment  string
	Keyword  string
	String   string
	Number   string
	Function string
	Class    string
	Variable string
	Operator string
}

// Color returns the palette color for c, or "" for CategoryNone.
func (p Palette) Color(c Category) string {
	switch c {
	case CategoryComment:
		return p.Comment
	case CategoryKeyword:
		return p.Keyword
	case CategoryString:
		return p.String
	case CategoryNumber:
		return p.Number
	case CategoryFunction:
		return p.Function
	case CategoryClass:
		return p.Class
	case CategoryVariable:
		return p.Variable
	case CategoryOperator:
		return p.Operator
	}
	return ""
}

// CodeTheme is an immutable named palette plus container colors.
type CodeTheme struct {
	ID         string
	Name       string
	Background string
	Foreground string
	Palette    Palette
}

// handThemes are palettes tuned for pasted code blocks.
var handThemes = []CodeTheme{
	{
		ID:         "github",
		Name:       "GitHub",
		Background: "#f6f8fa",
		Foreground: "#24292e",
		Palette: Palette{
			Comment:  "#6a737d",
			Keyword:  "#d73a49",
			String:   "#032f62",
			Number:   "#005cc5",
			Function: "#6f42c1",
			Class:    "#6f42c1",
			Variable: "#e36209",
			Operator: "#d73a49",
		},
	},
	{
		ID:         "atom-one-dark",
		Name:       "Atom One Dark",
		Background: "#282c34",
		Foreground: "#abb2bf",
		Palette: Palette{
			Comment:  "#5c6370",
			Keyword:  "#c678dd",
			String:   "#98c379",
			Number:   "#d19a66",
			Function: "#61aeee",
			Class:    "#e6c07b",
			Variable: "#e06c75",
			Operator: "#56b6c2",
		},
	},
	{
		ID:         "atom-one-light",
		Name:       "Atom One Light",
		Background: "#fafafa",
		Foreground: "#383a42",
		Palette: Palette{
			Comment:  "#a0a1a7",
			Keyword:  "#a626a4",
			String:   "#50a14f",
			Number:   "#986801",
			Function: "#4078f2",
			Class:    "#c18401",
			Variable: "#e45649",
			Operator: "#0184bc",
		},
	},
	{
		ID:         "vscode-dark",
		Name:       "VS Code Dark+",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Palette: Palette{
			Comment:  "#6a9955",
			Keyword:  "#569cd6",
			String:   "#ce9178",
			Number:   "#b5cea8",
			Function: "#dcdcaa",
			Class:    "#4ec9b0",
			Variable: "#9cdcfe",
			Operator: "#d4d4d4",
		},
	},
}

// chromaThemes derive palettes from chroma's style registry.
var chromaThemes = []struct{ id, name, style string }{
	{"monokai", "Monokai", "monokai"},
	{"dracula", "Dracula", "dracula"},
	{"nord", "Nord", "nord"},
	{"solarized-light", "Solarized Light", "solarized-light"},
}

var (
	registry = map[string]CodeTheme{}
	registryIDs []string
)

func init() {
	for _, t := range handThemes {
		register(t)
	}
	for _, c := range chromaThemes {
		register(FromChromaStyle(c.id, c.name, styles.Get(c.style)))
	}
}

func register(t CodeTheme) {
	registry[t.ID] = t
	registryIDs = append(registryIDs, t.ID)
}

// FromChromaStyle builds a CodeTheme from a chroma style. Categories the
// style leaves unset use the foreground color.
func FromChromaStyle(id, name string, s *chroma.Style) CodeTheme {
	bg := s.Get(chroma.Background)
	fg := colorOr(bg.Colour, "#000000")

	pick := func(tt chroma.TokenType) string {
		return colorOr(s.Get(tt).Colour, fg)
	}

	return CodeTheme{
		ID:         id,
		Name:       name,
		Background: colorOr(bg.Background, "#ffffff"),
		Foreground: fg,
		Palette: Palette{
			Comment:  pick(chroma.Comment),
			Keyword:  pick(chroma.Keyword),
			String:   pick(chroma.LiteralString),
			Number:   pick(chroma.LiteralNumber),
			Function: pick(chroma.NameFunction),
			Class:    pick(chroma.NameClass),
			Variable: pick(chroma.NameVariable),
			Operator: pick(chroma.Operator),
		},
	}
}

func colorOr(c chroma.Colour, def string) string {
	if !c.IsSet() {
		return def
	}
	return c.String()
}

// Lookup returns the theme registered under id, falling back to the default
// theme for unknown ids.
func Lookup(id string) CodeTheme {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[DefaultThemeID]
}

// Has reports whether id names a registered theme.
func Has(id string) bool {
	_, ok := registry[id]
	return ok
}

// Themes returns the registered themes in registration order.
func Themes() []CodeTheme {
	out := make([]CodeTheme, 0, len(registryIDs))
	for _, id := range registryIDs {
		out = append(out, registry[id])
	}
	return out
}
