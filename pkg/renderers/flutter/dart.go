package flutter

import (
	"strings"
	"unicode"
)

// dartString quotes s as a single-quoted Dart literal. Interpolation markers
// are escaped so user text never evaluates as code.
func dartString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// className converts a form id into a Dart class name: words split on
// dashes, underscores and spaces, each capitalised with the rest lowered.
// Characters that cannot appear in an identifier are dropped.
func className(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	var b strings.Builder
	for _, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		for _, r := range runes {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				b.WriteRune(r)
			}
		}
	}
	name := b.String()
	if name == "" {
		return "DynamicForm"
	}
	if !unicode.IsLetter(rune(name[0])) {
		return "Form" + name
	}
	return name
}

// dartLiteral turns JSON text into a Dart map literal. JSON syntax is valid
// Dart except that "$" inside strings starts an interpolation.
func dartLiteral(jsonText string) string {
	return strings.ReplaceAll(jsonText, "$", `\$`)
}
