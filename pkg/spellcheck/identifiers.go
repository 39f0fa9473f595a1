package spellcheck

import (
	"regexp"
	"strings"
)

var (
	// declarationPattern captures the name following a declaration keyword
	declarationPattern = regexp.MustCompile(`\b(?:function|let|const|var|class)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

	// callPattern matches a call expression up to the first closing
	// parenthesis, so nested calls are truncated at the inner closer
	callPattern = regexp.MustCompile(`\b[A-Za-z_$][A-Za-z0-9_$]*\([^)]*\)`)
)

// IdentifierSet holds the identifier-like text extracted from a document.
// A token matches when it equals an entry or occurs inside one, so pieces
// of a call expression that the tokenizer split apart are still
// recognized as code rather than prose.
type IdentifierSet struct {
	entries []string
}

// Matches reports whether a token counts as identifier text
func (s IdentifierSet) Matches(token string) bool {
	if token == "" {
		return false
	}

	for _, entry := range s.entries {
		if strings.Contains(entry, token) {
			return true
		}
	}

	return false
}

// Len returns the number of extracted entries
func (s IdentifierSet) Len() int {
	return len(s.entries)
}

// ExtractIdentifiers collects declared names and call expressions from
// the text. Comments are stripped first so commented-out code does not
// contribute entries.
func ExtractIdentifiers(text string) IdentifierSet {
	code := stripComments(text)

	var entries []string
	for _, match := range declarationPattern.FindAllStringSubmatch(code, -1) {
		entries = append(entries, match[1])
	}
	entries = append(entries, callPattern.FindAllString(code, -1)...)

	return IdentifierSet{entries: entries}
}
