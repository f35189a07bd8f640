package react

import (
	"html"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var braceReplacer = strings.NewReplacer("{", "&#123;", "}", "&#125;")

// jsxText escapes s for use as JSX child text.
func jsxText(s string) string {
	return braceReplacer.Replace(html.EscapeString(s))
}

// jsxAttr escapes s for use inside a double-quoted JSX attribute.
func jsxAttr(s string) string {
	return html.EscapeString(s)
}

// jsString renders s as a double-quoted JavaScript string literal.
func jsString(s string) string {
	raw, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(raw)
}

// numberLiteral renders a rule bound as a JavaScript number. Strings are
// parsed the same way the field validator coerces them.
func numberLiteral(value any) (string, bool) {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	default:
		return "", false
	}
}
