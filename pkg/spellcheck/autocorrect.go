package spellcheck

import (
	"regexp"
	"sort"

	"github.com/Code-Monger/CommentSpell/pkg/document"
)

// Fix describes one cleaned word rewritten by auto-correct
type Fix struct {
	Word        string `json:"word"`
	Replacement string `json:"replacement"`
	Count       int    `json:"count"`
}

// Correction is the outcome of an auto-correct pass over one document
type Correction struct {
	// Replacements holds one whole-comment splice per comment whose text
	// changed, ready for document.ApplyReplacements
	Replacements []document.Replacement

	// Fixes lists the rewritten words with their occurrence counts
	Fixes []Fix

	// Applied is the total number of occurrences rewritten
	Applied int

	// Unfixable lists the cleaned words that were flagged but had no
	// suggestion, sorted and deduplicated
	Unfixable []string
}

// CorrectComment rewrites one comment's text, replacing every occurrence
// of each record's cleaned word with the record's best suggestion.
// Replacement is case-sensitive and whole-word: occurrences embedded in
// longer words are left alone. Records without suggestions change
// nothing.
func CorrectComment(text string, records []MisspellingRecord) (string, []Fix) {
	corrected := text

	var fixes []Fix
	for _, record := range records {
		if len(record.Suggestions) == 0 {
			continue
		}

		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(record.Cleaned) + `\b`)
		count := len(pattern.FindAllStringIndex(corrected, -1))
		if count == 0 {
			continue
		}

		corrected = pattern.ReplaceAllString(corrected, record.Suggestions[0])
		fixes = append(fixes, Fix{
			Word:        record.Cleaned,
			Replacement: record.Suggestions[0],
			Count:       count,
		})
	}

	return corrected, fixes
}

// CorrectText detects misspellings in every comment of the text and
// builds the replacement batch that fixes them. Each changed comment
// becomes a single replacement covering the whole span.
func CorrectText(text string, lang Language, dict Dictionary, ignore Ignorer) Correction {
	identifiers := exclusionsFor(text, lang)
	unfixable := make(map[string]struct{})

	var result Correction
	for _, span := range Spans(text, lang) {
		records := Detect(span.Text, identifiers, dict, ignore)
		if len(records) == 0 {
			continue
		}

		for _, record := range records {
			if len(record.Suggestions) == 0 {
				unfixable[record.Cleaned] = struct{}{}
			}
		}

		corrected, fixes := CorrectComment(span.Text, records)
		if corrected == span.Text {
			continue
		}

		for _, fix := range fixes {
			result.Applied += fix.Count
		}
		result.Fixes = append(result.Fixes, fixes...)
		result.Replacements = append(result.Replacements, document.Replacement{
			Start:   span.Start,
			End:     span.Start + len(span.Text),
			NewText: corrected,
		})
	}

	for word := range unfixable {
		result.Unfixable = append(result.Unfixable, word)
	}
	sort.Strings(result.Unfixable)

	return result
}
