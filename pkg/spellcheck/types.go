package spellcheck

import (
	"github.com/Code-Monger/CommentSpell/pkg/document"
)

// CommentSpan is one extracted comment: its raw text, delimiters included,
// and the byte offset where it starts in the document
type CommentSpan struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
}

// MisspellingRecord describes one flagged token occurrence inside a
// comment. Original is the token as the tokenizer produced it; Cleaned is
// its letters-only form, which doubles as the correlation code.
type MisspellingRecord struct {
	Original    string   `json:"original"`
	Cleaned     string   `json:"cleaned"`
	Suggestions []string `json:"suggestions"`
}

// Finding pairs a projected diagnostic with the record it came from
type Finding struct {
	Diagnostic document.Diagnostic
	Record     MisspellingRecord
}

// Dictionary is the spelling surface the detector consumes
type Dictionary interface {
	Check(word string) bool
	Suggest(word string) []string
}

// Ignorer reports whether a cleaned word has been ignored for the session
type Ignorer interface {
	Contains(word string) bool
}
