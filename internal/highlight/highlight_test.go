package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func TestHighlight_UnknownLanguage(t *testing.T) {
	t.Parallel()

	h := New(nil)
	for _, lang := range []string{"", "lang-does-not-exist", "   "} {
		out, ok := h.Highlight("x := 1", lang, "github")
		if ok || out != "" {
			t.Errorf("Highlight(_, %q) = (%q, %v), want (\"\", false)", lang, out, ok)
		}
	}
}

func TestHighlight_Go(t *testing.T) {
	t.Parallel()

	h := New(nil)
	code := "// greet\nfunc main() {\n\treturn \"hi\"\n}\n"
	out, ok := h.Highlight(code, "go", "github")
	if !ok {
		t.Fatal("Highlight(go) returned ok=false")
	}

	theme := Lookup("github")
	checks := []string{
		`<span style="color: ` + theme.Palette.Comment + `">// greet</span>`,
		`<span style="color: ` + theme.Palette.Keyword + `">func</span>`,
		`&#34;hi&#34;`,
		`<span class="code-line">`,
		`<span class="line-number"`,
		`>4</span>`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot: %s", want, out)
		}
	}

	if n := strings.Count(out, `class="code-line"`); n != 4 {
		t.Errorf("code-line count = %d, want 4", n)
	}
	if strings.Contains(out, ">5</span>") {
		t.Error("trailing newline produced an extra line")
	}
}

func TestHighlight_PreservesText(t *testing.T) {
	t.Parallel()

	h := New(nil)
	code := "a < b && c > d"
	out, ok := h.Highlight(code, "javascript", "atom-one-dark")
	if !ok {
		t.Fatal("Highlight(javascript) returned ok=false")
	}

	stripped := stripTags(out)
	if !strings.Contains(stripped, "a &lt; b &amp;&amp; c &gt; d") {
		t.Errorf("text content = %q, want escaped source verbatim", stripped)
	}
}

func TestLineNumberWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lines    int
		expected int
	}{
		{0, 20},
		{1, 20},
		{9, 20},
		{10, 28},
		{99, 28},
		{100, 36},
		{1234, 44},
	}

	for _, tt := range tests {
		if got := LineNumberWidth(tt.lines); got != tt.expected {
			t.Errorf("LineNumberWidth(%d) = %d, want %d", tt.lines, got, tt.expected)
		}
	}
}

func TestHighlight_GutterWidthFollowsLineCount(t *testing.T) {
	t.Parallel()

	h := New(nil)
	code := strings.Repeat("x = 1\n", 12)
	out, ok := h.Highlight(code, "python", "github")
	if !ok {
		t.Fatal("Highlight(python) returned ok=false")
	}
	if !strings.Contains(out, "width: 28px") {
		t.Errorf("expected a 28px gutter for 12 lines, got: %s", out)
	}
	if !strings.Contains(out, "user-select: none") {
		t.Error("line numbers should not be selectable")
	}
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    chroma.TokenType
		expected Category
	}{
		{chroma.CommentSingle, CategoryComment},
		{chroma.CommentPreproc, CategoryComment},
		{chroma.KeywordDeclaration, CategoryKeyword},
		{chroma.KeywordType, CategoryClass},
		{chroma.LiteralStringDouble, CategoryString},
		{chroma.LiteralNumberInteger, CategoryNumber},
		{chroma.NameFunctionMagic, CategoryFunction},
		{chroma.NameClass, CategoryClass},
		{chroma.NameVariableInstance, CategoryVariable},
		{chroma.OperatorWord, CategoryOperator},
		{chroma.Punctuation, CategoryNone},
		{chroma.Text, CategoryNone},
		{chroma.Name, CategoryNone},
	}

	for _, tt := range tests {
		if got := CategoryOf(tt.input); got != tt.expected {
			t.Errorf("CategoryOf(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	if got := Lookup("does-not-exist"); got.ID != DefaultThemeID {
		t.Errorf("Lookup(unknown).ID = %q, want %q", got.ID, DefaultThemeID)
	}
	if got := Lookup("vscode-dark"); got.Background != "#1e1e1e" {
		t.Errorf("vscode-dark background = %q", got.Background)
	}
	if Has("nope") {
		t.Error("Has(nope) = true")
	}
}

func TestThemes_StableAndComplete(t *testing.T) {
	t.Parallel()

	want := []string{
		"github", "atom-one-dark", "atom-one-light", "vscode-dark",
		"monokai", "dracula", "nord", "solarized-light",
	}
	got := Themes()
	if len(got) != len(want) {
		t.Fatalf("Themes() returned %d themes, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Themes()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
		th := got[i]
		for _, c := range []string{th.Background, th.Foreground, th.Palette.Comment, th.Palette.Keyword, th.Palette.String} {
			if !strings.HasPrefix(c, "#") {
				t.Errorf("theme %q has non-hex color %q", th.ID, c)
			}
		}
	}
}

func TestFromChromaStyle(t *testing.T) {
	t.Parallel()

	s := styles.Get("monokai")
	th := FromChromaStyle("m", "M", s)
	if th.Background != s.Get(chroma.Background).Background.String() {
		t.Errorf("Background = %q", th.Background)
	}
	if th.Palette.Keyword == th.Palette.Comment {
		t.Error("keyword and comment colors should differ for monokai")
	}
}

func stripTags(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '<':
			in = true
		case r == '>':
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}
