package style

// DefaultThemeColor is the accent color used when no template sets one.
const DefaultThemeColor = "#0F4C81"

// DefaultCodeTheme is the code theme id used when none is configured.
const DefaultCodeTheme = "github"

// Defaults returns the built-in options. Headings and strong text carry no
// color so the theme color cascades into them.
func Defaults() RendererOptions {
	return RendererOptions{
		Base: BaseOptions{
			ThemeColor: DefaultThemeColor,
			FontSize:   "16px",
			LineHeight: "1.75",
			TextAlign:  "left",
			FontFamily: `-apple-system, BlinkMacSystemFont, "Helvetica Neue", "PingFang SC", "Microsoft YaHei", sans-serif`,
		},
		Block: map[string]StyleOptions{
			BlockH1: {
				"fontSize":   24,
				"fontWeight": "bold",
				"margin":     "2em auto 1em",
				"textAlign":  "center",
			},
			BlockH2: {
				"fontSize":   20,
				"fontWeight": "bold",
				"margin":     "4em auto 2em",
				"textAlign":  "center",
			},
			BlockH3: {
				"fontSize":   18,
				"fontWeight": "bold",
				"margin":     "2em 8px 0.75em 0",
			},
			BlockH4: {
				"fontSize":   16,
				"fontWeight": "bold",
				"margin":     "2em 8px 0.5em",
			},
			BlockH5: {
				"fontSize":   15,
				"fontWeight": "bold",
				"margin":     "1.5em 8px 0.5em",
			},
			BlockH6: {
				"fontSize":   14,
				"fontWeight": "bold",
				"margin":     "1.5em 8px 0.5em",
			},
			BlockParagraph: {
				"margin":        "1.5em 8px",
				"letterSpacing": "0.1em",
				"color":         "#3f3f3f",
			},
			BlockQuote: {
				"fontStyle":    "normal",
				"padding":      "1em",
				"borderLeft":   "4px solid",
				"borderRadius": 6,
				"color":        "rgba(0, 0, 0, 0.5)",
				"background":   "#f7f7f7",
				"margin":       "0 8px 1em",
			},
			BlockCodePre: {
				"fontSize":     14,
				"overflowX":    "auto",
				"borderRadius": 8,
				"padding":      "1em",
				"lineHeight":   1.5,
				"margin":       "10px 8px",
			},
			BlockImage: {
				"borderRadius": 4,
			},
			BlockUL: {
				"margin": "0.5em 8px",
				"color":  "#3f3f3f",
			},
			BlockOL: {
				"margin": "0.5em 8px",
				"color":  "#3f3f3f",
			},
			BlockTable: {
				"borderCollapse": "collapse",
				"margin":         "1em 8px",
				"fontSize":       14,
			},
			BlockTH: {
				"border":     "1px solid #dfdfdf",
				"padding":    "0.25em 0.5em",
				"fontWeight": "bold",
				"background": "rgba(0, 0, 0, 0.05)",
			},
			BlockTD: {
				"border":  "1px solid #dfdfdf",
				"padding": "0.25em 0.5em",
			},
			BlockFootnotes: {
				"margin":   "0.5em 8px",
				"fontSize": "80%",
				"color":    "#3f3f3f",
			},
			BlockLatex: {
				"margin":    "1em 8px",
				"textAlign": "center",
				"overflowX": "auto",
			},
			BlockMermaid: {
				"margin":    "1em 8px",
				"textAlign": "center",
			},
			BlockHR: {
				"borderStyle": "solid",
				"borderWidth": "1px 0 0",
				"borderColor": "rgba(0, 0, 0, 0.1)",
				"margin":      "1.5em 0",
			},
			BlockRecommend: {
				"margin":       "1em 8px",
				"padding":      "0.75em 1em",
				"borderRadius": 8,
				"background":   "#f7f7f7",
			},
		},
		Inline: map[string]StyleOptions{
			InlineStrong: {
				"fontWeight": "bold",
			},
			InlineEm: {
				"fontStyle": "italic",
				"color":     "#666",
			},
			InlineCodespan: {
				"fontSize":     "90%",
				"color":        "#d14",
				"background":   "rgba(27, 31, 35, 0.05)",
				"padding":      "3px 5px",
				"borderRadius": 4,
			},
			InlineLink: {
				"color":          "#576b95",
				"textDecoration": "none",
			},
			InlineListItem: {
				"margin":    "0.2em 8px",
				"textAlign": "left",
			},
			InlineDel: {
				"textDecoration": "line-through",
			},
			InlineCheckbox: {
				"marginRight":   6,
				"verticalAlign": "middle",
			},
			InlineLatex: {
				"display": "inline-block",
			},
			InlineFootnote: {
				"fontSize":      "75%",
				"verticalAlign": "super",
			},
		},
		CodeTheme: DefaultCodeTheme,
	}
}
