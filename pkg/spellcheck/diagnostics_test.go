package spellcheck

import (
	"testing"
)

func TestProjectRepeatedWordGetsDistinctRanges(t *testing.T) {
	span := CommentSpan{Text: "// tset and tset", Start: 10}
	records := []MisspellingRecord{
		{Original: "tset", Cleaned: "tset", Suggestions: []string{"test"}},
		{Original: "tset", Cleaned: "tset", Suggestions: []string{"test"}},
	}

	findings := Project(span, records)
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2", len(findings))
	}

	first, second := findings[0].Diagnostic, findings[1].Diagnostic
	if first.Start != 13 || first.End != 17 {
		t.Errorf("first range = [%d,%d), want [13,17)", first.Start, first.End)
	}
	if second.Start != 22 || second.End != 26 {
		t.Errorf("second range = [%d,%d), want [22,26)", second.Start, second.End)
	}
	if first.Start == second.Start {
		t.Error("repeated occurrences must not share a range")
	}
}

func TestProjectDropsUnlocatableRecord(t *testing.T) {
	span := CommentSpan{Text: "// tset and tset", Start: 0}
	records := []MisspellingRecord{
		{Original: "tset", Cleaned: "tset"},
		{Original: "zzz", Cleaned: "zzz"},
		{Original: "tset", Cleaned: "tset"},
	}

	findings := Project(span, records)
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2 (unlocatable record dropped)", len(findings))
	}
	if findings[0].Diagnostic.Start != 3 {
		t.Errorf("first start = %d, want 3", findings[0].Diagnostic.Start)
	}
	if findings[1].Diagnostic.Start != 12 {
		t.Errorf("second start = %d, want 12", findings[1].Diagnostic.Start)
	}
}

func TestProjectDiagnosticFields(t *testing.T) {
	span := CommentSpan{Text: "// fix speling: now", Start: 5}
	records := []MisspellingRecord{
		{Original: "speling:", Cleaned: "speling", Suggestions: []string{"spelling"}},
	}

	findings := Project(span, records)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}

	diag := findings[0].Diagnostic
	if diag.Message != `"speling": Unknown word.` {
		t.Errorf("Message = %q", diag.Message)
	}
	if diag.Code != "speling" {
		t.Errorf("Code = %q, want the cleaned word", diag.Code)
	}
	if diag.Severity != "warning" {
		t.Errorf("Severity = %q, want %q", diag.Severity, "warning")
	}
	// The range covers the raw token, punctuation included
	if got := diag.End - diag.Start; got != len("speling:") {
		t.Errorf("range length = %d, want %d", got, len("speling:"))
	}
}

func TestProjectDropsTokenAlteredByCleaning(t *testing.T) {
	// "a.bc" tokenizes to "abc", which no longer appears in the span
	span := CommentSpan{Text: "// see a.bc here", Start: 0}
	dict := fakeDict{misspelled: map[string][]string{
		"abc": {"abcs"},
	}}

	records := Detect(span.Text, noIdentifiers(), dict, nil)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	findings := Project(span, records)
	if len(findings) != 0 {
		t.Errorf("got %d findings, want 0", len(findings))
	}
}

func TestSuggestionText(t *testing.T) {
	record := MisspellingRecord{Suggestions: []string{"test", "set"}}
	if got := SuggestionText(record); got != "Suggestions: test, set" {
		t.Errorf("SuggestionText = %q", got)
	}

	record.Suggestions = nil
	if got := SuggestionText(record); got != "No suggestions available." {
		t.Errorf("SuggestionText = %q", got)
	}
}

func TestDiagnosticsFlattensFindings(t *testing.T) {
	span := CommentSpan{Text: "// tset", Start: 0}
	records := []MisspellingRecord{{Original: "tset", Cleaned: "tset"}}

	diagnostics := Diagnostics(Project(span, records))
	if len(diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diagnostics))
	}
	if diagnostics[0].Start != 3 || diagnostics[0].End != 7 {
		t.Errorf("range = [%d,%d), want [3,7)", diagnostics[0].Start, diagnostics[0].End)
	}
}
