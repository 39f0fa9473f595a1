package spellcheck

// Spans returns the comment spans to check for a document kind: every
// extracted comment for code kinds, or the whole text as one span
// starting at offset zero for prose kinds
func Spans(text string, lang Language) []CommentSpan {
	if lang.Prose {
		return []CommentSpan{{Text: text, Start: 0}}
	}

	return ExtractComments(text)
}

// exclusionsFor returns the identifier set for a document kind. Prose
// kinds have no code, so nothing is excluded.
func exclusionsFor(text string, lang Language) IdentifierSet {
	if lang.Prose {
		return IdentifierSet{}
	}

	return ExtractIdentifiers(text)
}

// ScanText checks every comment span of the text and returns the findings
// in document order
func ScanText(text string, lang Language, dict Dictionary, ignore Ignorer) []Finding {
	identifiers := exclusionsFor(text, lang)

	var findings []Finding
	for _, span := range Spans(text, lang) {
		records := Detect(span.Text, identifiers, dict, ignore)
		findings = append(findings, Project(span, records)...)
	}

	return findings
}

// CountTokens returns the number of candidate tokens across the comment
// spans of the text, for activity accounting
func CountTokens(text string, lang Language) int {
	total := 0
	for _, span := range Spans(text, lang) {
		total += len(Tokenize(span.Text))
	}

	return total
}
