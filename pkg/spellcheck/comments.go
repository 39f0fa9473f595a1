package spellcheck

import (
	"regexp"
)

// commentPattern matches line comments to the end of their line and block
// comments non-greedily to the first closing delimiter. Matching is
// non-overlapping, so comment openers inside an already matched comment
// are not matched again.
var commentPattern = regexp.MustCompile(`(?s)//[^\n]*|/\*.*?\*/`)

// ExtractComments returns every comment in the text together with its
// starting byte offset, in document order. An unterminated block comment
// opener yields no span.
func ExtractComments(text string) []CommentSpan {
	matches := commentPattern.FindAllStringIndex(text, -1)
	spans := make([]CommentSpan, 0, len(matches))
	for _, match := range matches {
		spans = append(spans, CommentSpan{
			Text:  text[match[0]:match[1]],
			Start: match[0],
		})
	}

	return spans
}

// stripComments removes every comment from the text, leaving the code
func stripComments(text string) string {
	return commentPattern.ReplaceAllString(text, "")
}
