package textutil

import "strings"

// Key reduces a name to a lowercase alphanumeric comparison key.
// Punctuation, separators, and whitespace are dropped so that
// "Fabric-API", "fabric_api", and "Fabric Api" all collapse to
// "fabricapi". Returns "" for input with no letters or digits.
func Key(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokens splits a filename stem into its delimited words. Hyphens,
// underscores, dots, plus signs, and spaces all act as separators;
// empty tokens are dropped.
func Tokens(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		switch r {
		case '-', '_', '.', '+', ' ':
			return true
		}
		return false
	})
}

// JoinWords joins tokens with single spaces, trimming the result.
func JoinWords(tokens []string) string {
	return strings.TrimSpace(strings.Join(tokens, " "))
}
