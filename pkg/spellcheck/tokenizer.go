package spellcheck

import (
	"strings"
	"unicode"
)

// Tokenize splits comment text into candidate tokens. The text is split
// on runs of whitespace and commas, then periods are removed from each
// token; tokens that end up empty are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.ReplaceAll(field, ".", "")
		if field != "" {
			tokens = append(tokens, field)
		}
	}

	return tokens
}

// CleanWord reduces a token to its ASCII letters. The result is the form
// checked against the dictionary and used as the diagnostic code; it may
// be empty for tokens with no letters at all.
func CleanWord(token string) string {
	var builder strings.Builder
	for _, r := range token {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
