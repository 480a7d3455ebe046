package skill

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize is the canonical form of a skill key: trimmed and lower-cased.
// Vocabulary entries and catalog keys both go through it.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Capitalize renders a skill for display: first letter upper-cased, the rest
// lower-cased ("machine learning" -> "Machine learning", "AWS" -> "Aws").
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
