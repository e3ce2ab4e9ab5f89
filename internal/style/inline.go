package style

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// unitless lists properties whose numeric values are emitted without a unit.
var unitless = map[string]bool{
	"lineHeight": true,
	"fontWeight": true,
	"opacity":    true,
	"zIndex":     true,
	"flex":       true,
	"flexGrow":   true,
	"flexShrink": true,
	"order":      true,
}

// ToInlineStyleString converts a StyleOptions into a `key: value; key: value`
// declaration list. Unset, boolean and media-query entries are dropped.
// Declarations are ordered by CSS property name so a shorthand always
// precedes its longhands.
func ToInlineStyleString(s StyleOptions) string {
	if len(s) == 0 {
		return ""
	}

	type decl struct{ prop, value string }
	decls := make([]decl, 0, len(s))
	for key, raw := range s {
		if key == "" || strings.HasPrefix(key, "@") {
			continue
		}
		value, ok := formatValue(key, raw)
		if !ok {
			continue
		}
		decls = append(decls, decl{prop: KebabCase(key), value: value})
	}

	slices.SortFunc(decls, func(a, b decl) int { return strings.Compare(a.prop, b.prop) })

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// formatValue renders a single property value. It returns false for values
// that cannot be expressed inline.
func formatValue(key string, raw any) (string, bool) {
	if raw == nil {
		return "", false
	}

	switch v := raw.(type) {
	case string:
		v = strings.TrimSpace(v)
		if v == "" || v == "undefined" || v == "null" {
			return "", false
		}
		return v, true
	case bool:
		return "", false
	}

	rv := reflect.ValueOf(raw)
	var num string
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		num = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		num = strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return "", false
	}

	if unitless[key] || num == "0" {
		return num, true
	}
	return num + "px", true
}

// KebabCase converts a camelCase property name to its CSS form.
// Custom properties (--name) are returned unchanged; a leading capital
// becomes a vendor prefix (WebkitUserSelect -> -webkit-user-select).
func KebabCase(name string) string {
	if strings.HasPrefix(name, "--") || strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ThemeColorVar is the custom property carrying the theme color on the
// outer wrapper.
const ThemeColorVar = "--md-primary-color"

// BaseStylesToInlineVars emits the wrapper declarations derived from base
// options. Absent fields are skipped; a zero BaseOptions yields "".
func BaseStylesToInlineVars(b BaseOptions) string {
	pairs := [][2]string{
		{ThemeColorVar, b.ThemeColor},
		{"font-family", b.FontFamily},
		{"font-size", b.FontSize},
		{"line-height", b.LineHeight},
		{"text-align", b.TextAlign},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		v := strings.TrimSpace(p[1])
		if v == "" {
			continue
		}
		parts = append(parts, p[0]+": "+v)
	}
	return strings.Join(parts, "; ")
}
