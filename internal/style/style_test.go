package style

import (
	"strings"
	"testing"
)

func TestToInlineStyleString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    StyleOptions
		expected string
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: "",
		},
		{
			name:     "camelCase to kebab-case",
			input:    StyleOptions{"fontSize": "16px", "color": "#333"},
			expected: "color: #333; font-size: 16px",
		},
		{
			name:     "numbers get pixel units",
			input:    StyleOptions{"marginTop": 12, "padding": 2.5},
			expected: "margin-top: 12px; padding: 2.5px",
		},
		{
			name:     "line height stays unitless",
			input:    StyleOptions{"lineHeight": 1.75},
			expected: "line-height: 1.75",
		},
		{
			name:     "zero has no unit",
			input:    StyleOptions{"margin": 0},
			expected: "margin: 0",
		},
		{
			name:     "nil and empty values dropped",
			input:    StyleOptions{"color": nil, "background": "", "fontSize": 14},
			expected: "font-size: 14px",
		},
		{
			name:     "media query keys dropped",
			input:    StyleOptions{"@media (max-width: 600px)": map[string]any{"fontSize": 12}, "color": "red"},
			expected: "color: red",
		},
		{
			name:     "boolean directives dropped",
			input:    StyleOptions{TitleBarKey: false, "color": "red"},
			expected: "color: red",
		},
		{
			name:     "vendor prefix",
			input:    StyleOptions{"WebkitUserSelect": "none"},
			expected: "-webkit-user-select: none",
		},
		{
			name:     "custom property kept",
			input:    StyleOptions{"--md-primary-color": "#f00"},
			expected: "--md-primary-color: #f00",
		},
		{
			name:     "shorthand sorts before longhand",
			input:    StyleOptions{"borderLeftColor": "red", "borderLeft": "4px solid"},
			expected: "border-left: 4px solid; border-left-color: red",
		},
		{
			name:     "unsigned integers from yaml",
			input:    StyleOptions{"fontSize": uint64(18)},
			expected: "font-size: 18px",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToInlineStyleString(tt.input)
			if got != tt.expected {
				t.Errorf("ToInlineStyleString(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToInlineStyleString_NeverPrintsUndefined(t *testing.T) {
	t.Parallel()

	opts := Defaults()
	opts.Block["p"]["color"] = nil
	opts.Block["p"]["border"] = "undefined"
	opts.Block["p"]["outline"] = "null"

	for kind, s := range opts.Block {
		got := ToInlineStyleString(s)
		if strings.Contains(got, "undefined") || strings.Contains(got, "null") || strings.Contains(got, "<nil>") {
			t.Errorf("block %q style %q contains an unset marker", kind, got)
		}
	}
	for kind, s := range opts.Inline {
		got := ToInlineStyleString(s)
		if strings.Contains(got, "undefined") || strings.Contains(got, "null") {
			t.Errorf("inline %q style %q contains an unset marker", kind, got)
		}
	}
}

func TestMergeStyles(t *testing.T) {
	t.Parallel()

	base := StyleOptions{"color": "red", "fontSize": 16}
	override := StyleOptions{"color": "blue"}

	got := MergeStyles(base, override)

	if got["color"] != "blue" {
		t.Errorf("color = %v, want blue", got["color"])
	}
	if got["fontSize"] != 16 {
		t.Errorf("fontSize = %v, want 16", got["fontSize"])
	}
	if base["color"] != "red" {
		t.Error("MergeStyles mutated its input")
	}

	removed := MergeStyles(base, StyleOptions{"fontSize": nil})
	if _, ok := removed["fontSize"]; ok {
		t.Error("nil in a later layer should remove the property")
	}
}

func TestMergeOptions(t *testing.T) {
	t.Parallel()

	defaults := RendererOptions{
		Base:      BaseOptions{ThemeColor: "#000", FontSize: "16px"},
		Block:     map[string]StyleOptions{"h1": {"fontSize": 24, "margin": "1em"}},
		CodeTheme: "github",
	}
	preset := RendererOptions{
		Base:  BaseOptions{ThemeColor: "#111"},
		Block: map[string]StyleOptions{"h1": {"color": "#222"}},
	}
	user := RendererOptions{
		Block:     map[string]StyleOptions{"h1": {"fontSize": 30}},
		Inline:    map[string]StyleOptions{"strong": {"color": "#333"}},
		CodeTheme: "monokai",
	}

	got := MergeOptions(defaults, preset, user)

	if got.Base.ThemeColor != "#111" {
		t.Errorf("ThemeColor = %q, want #111", got.Base.ThemeColor)
	}
	if got.Base.FontSize != "16px" {
		t.Errorf("FontSize = %q, want 16px", got.Base.FontSize)
	}
	h1 := got.Block["h1"]
	if h1["fontSize"] != 30 || h1["color"] != "#222" || h1["margin"] != "1em" {
		t.Errorf("h1 = %v, want shallow per-kind merge", h1)
	}
	if got.Inline["strong"]["color"] != "#333" {
		t.Errorf("strong = %v", got.Inline["strong"])
	}
	if got.CodeTheme != "monokai" {
		t.Errorf("CodeTheme = %q, want monokai", got.CodeTheme)
	}

	got.Block["h1"]["color"] = "changed"
	if preset.Block["h1"]["color"] != "#222" {
		t.Error("MergeOptions result aliases an input layer")
	}
}

func TestResolve_DefaultsHaveNoHeadingColor(t *testing.T) {
	t.Parallel()

	opts := Resolve(RendererOptions{}, RendererOptions{})
	for _, kind := range []string{BlockH1, BlockH2, BlockH3, BlockH4, BlockH5, BlockH6} {
		if c := opts.BlockStyle(kind).Color(); c != "" {
			t.Errorf("default %s color = %q, want none", kind, c)
		}
	}
	if c := opts.InlineStyle(InlineStrong).Color(); c != "" {
		t.Errorf("default strong color = %q, want none", c)
	}
}

func TestBaseStylesToInlineVars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    BaseOptions
		expected string
	}{
		{
			name:     "empty",
			input:    BaseOptions{},
			expected: "",
		},
		{
			name:     "theme color only",
			input:    BaseOptions{ThemeColor: "#ff0000"},
			expected: "--md-primary-color: #ff0000",
		},
		{
			name: "all fields in fixed order",
			input: BaseOptions{
				ThemeColor: "#ff0000",
				FontSize:   "15px",
				LineHeight: "1.6",
				TextAlign:  "justify",
				FontFamily: "serif",
			},
			expected: "--md-primary-color: #ff0000; font-family: serif; font-size: 15px; line-height: 1.6; text-align: justify",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BaseStylesToInlineVars(tt.input)
			if got != tt.expected {
				t.Errorf("BaseStylesToInlineVars() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStyleOptions_Flag(t *testing.T) {
	t.Parallel()

	s := StyleOptions{"a": false, "b": "none", "c": 1}
	if s.Flag("a", true) {
		t.Error("bool false should disable")
	}
	if s.Flag("b", true) {
		t.Error(`"none" should disable`)
	}
	if !s.Flag("c", true) {
		t.Error("non-boolean value should return default")
	}
	if !s.Flag("missing", true) {
		t.Error("missing key should return default")
	}
}
