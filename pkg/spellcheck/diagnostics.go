package spellcheck

import (
	"fmt"
	"strings"

	"github.com/Code-Monger/CommentSpell/pkg/document"
)

// Project maps the records detected in a span back onto document ranges.
// Each record's original token is located left to right with an advancing
// cursor, so repeated words get their own, distinct ranges. A token that
// cannot be found in the span is dropped silently.
func Project(span CommentSpan, records []MisspellingRecord) []Finding {
	var findings []Finding

	cursor := 0
	for _, record := range records {
		idx := strings.Index(span.Text[cursor:], record.Original)
		if idx < 0 {
			continue
		}

		start := span.Start + cursor + idx
		findings = append(findings, Finding{
			Diagnostic: document.Diagnostic{
				Start:    start,
				End:      start + len(record.Original),
				Message:  fmt.Sprintf("%q: Unknown word.", record.Cleaned),
				Code:     record.Cleaned,
				Severity: document.SeverityWarning,
			},
			Record: record,
		})
		cursor += idx + len(record.Original)
	}

	return findings
}

// SuggestionText renders a record's suggestion list for display
func SuggestionText(record MisspellingRecord) string {
	if len(record.Suggestions) == 0 {
		return "No suggestions available."
	}

	return "Suggestions: " + strings.Join(record.Suggestions, ", ")
}

// Diagnostics extracts the plain diagnostics from a list of findings
func Diagnostics(findings []Finding) []document.Diagnostic {
	diagnostics := make([]document.Diagnostic, 0, len(findings))
	for _, finding := range findings {
		diagnostics = append(diagnostics, finding.Diagnostic)
	}

	return diagnostics
}
