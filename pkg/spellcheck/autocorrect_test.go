package spellcheck

import (
	"testing"

	"github.com/Code-Monger/CommentSpell/pkg/document"
)

func jsLang(t *testing.T) Language {
	t.Helper()
	lang, ok := GetLanguageByExtension("app.js")
	if !ok {
		t.Fatal("JavaScript language not registered")
	}
	return lang
}

func TestCorrectTextRewritesComment(t *testing.T) {
	dict := fakeDict{misspelled: map[string][]string{
		"tset": {"test", "set"},
	}}
	text := "// This is a tset"

	correction := CorrectText(text, jsLang(t), dict, nil)
	if len(correction.Replacements) != 1 {
		t.Fatalf("got %d replacements, want 1", len(correction.Replacements))
	}

	rep := correction.Replacements[0]
	if rep.Start != 0 || rep.End != len(text) {
		t.Errorf("replacement range = [%d,%d), want the whole comment", rep.Start, rep.End)
	}
	if rep.NewText != "// This is a test" {
		t.Errorf("NewText = %q, want %q", rep.NewText, "// This is a test")
	}
	if correction.Applied != 1 {
		t.Errorf("Applied = %d, want 1", correction.Applied)
	}

	corrected, err := document.ApplyReplacements(text, correction.Replacements)
	if err != nil {
		t.Fatalf("ApplyReplacements: %v", err)
	}
	if corrected != "// This is a test" {
		t.Errorf("corrected text = %q", corrected)
	}
}

func TestCorrectCommentWholeWordOnly(t *testing.T) {
	records := []MisspellingRecord{
		{Original: "tset", Cleaned: "tset", Suggestions: []string{"test"}},
	}

	corrected, fixes := CorrectComment("// tset tsets", records)
	if corrected != "// test tsets" {
		t.Errorf("corrected = %q, want embedded occurrence untouched", corrected)
	}
	if len(fixes) != 1 || fixes[0].Count != 1 {
		t.Errorf("fixes = %+v, want one fix with count 1", fixes)
	}
}

func TestCorrectCommentWithoutSuggestionsChangesNothing(t *testing.T) {
	records := []MisspellingRecord{
		{Original: "wrold", Cleaned: "wrold"},
	}

	corrected, fixes := CorrectComment("// wrold here", records)
	if corrected != "// wrold here" {
		t.Errorf("corrected = %q, want unchanged", corrected)
	}
	if len(fixes) != 0 {
		t.Errorf("fixes = %+v, want none", fixes)
	}
}

func TestCorrectTextRepeatedWordSingleEdit(t *testing.T) {
	dict := fakeDict{misspelled: map[string][]string{
		"tset": {"test"},
	}}
	text := "// tset and tset"

	correction := CorrectText(text, jsLang(t), dict, nil)
	if len(correction.Replacements) != 1 {
		t.Fatalf("got %d replacements, want a single comment-level edit", len(correction.Replacements))
	}
	if correction.Applied != 2 {
		t.Errorf("Applied = %d, want 2", correction.Applied)
	}
	if len(correction.Fixes) != 1 || correction.Fixes[0].Count != 2 {
		t.Errorf("Fixes = %+v, want one fix covering both occurrences", correction.Fixes)
	}

	corrected, err := document.ApplyReplacements(text, correction.Replacements)
	if err != nil {
		t.Fatalf("ApplyReplacements: %v", err)
	}
	if corrected != "// test and test" {
		t.Errorf("corrected = %q, want %q", corrected, "// test and test")
	}
}

func TestCorrectCommentIsCaseSensitive(t *testing.T) {
	records := []MisspellingRecord{
		{Original: "Tset", Cleaned: "Tset", Suggestions: []string{"test"}},
		{Original: "tset", Cleaned: "tset", Suggestions: []string{"test"}},
	}

	corrected, fixes := CorrectComment("// Tset tset", records)
	if corrected != "// test test" {
		t.Errorf("corrected = %q, want %q", corrected, "// test test")
	}
	if len(fixes) != 2 {
		t.Errorf("fixes = %+v, want one per cased form", fixes)
	}
}

func TestCorrectTextAcrossComments(t *testing.T) {
	dict := fakeDict{misspelled: map[string][]string{
		"tset": {"test"},
	}}
	text := "// a tset\nrun();\n/* another tset */\n"

	correction := CorrectText(text, jsLang(t), dict, nil)
	if len(correction.Replacements) != 2 {
		t.Fatalf("got %d replacements, want 2", len(correction.Replacements))
	}

	corrected, err := document.ApplyReplacements(text, correction.Replacements)
	if err != nil {
		t.Fatalf("ApplyReplacements: %v", err)
	}
	if corrected != "// a test\nrun();\n/* another test */\n" {
		t.Errorf("corrected = %q", corrected)
	}

	// A second pass over the corrected text finds nothing left to fix
	again := CorrectText(corrected, jsLang(t), dict, nil)
	if len(again.Replacements) != 0 || again.Applied != 0 {
		t.Errorf("second pass changed text again: %+v", again)
	}
}

func TestCorrectTextReportsUnfixable(t *testing.T) {
	dict := fakeDict{misspelled: map[string][]string{
		"tset":  {"test"},
		"wrold": {},
		"qqx":   {},
	}}
	text := "// tset and wrold\n// wrold and qqx\n"

	correction := CorrectText(text, jsLang(t), dict, nil)
	if len(correction.Unfixable) != 2 || correction.Unfixable[0] != "qqx" || correction.Unfixable[1] != "wrold" {
		t.Errorf("Unfixable = %v, want [qqx wrold]", correction.Unfixable)
	}
	if correction.Applied != 1 {
		t.Errorf("Applied = %d, want 1", correction.Applied)
	}

	corrected, err := document.ApplyReplacements(text, correction.Replacements)
	if err != nil {
		t.Fatalf("ApplyReplacements: %v", err)
	}
	if corrected != "// test and wrold\n// wrold and qqx\n" {
		t.Errorf("corrected = %q, want unfixable words left alone", corrected)
	}
}

func TestCorrectTextProseDocument(t *testing.T) {
	lang, ok := GetLanguageByExtension("notes.txt")
	if !ok {
		t.Fatal("plain text language not registered")
	}
	dict := fakeDict{misspelled: map[string][]string{
		"tset": {"test"},
	}}
	text := "A tset document without comments"

	correction := CorrectText(text, lang, dict, nil)
	if len(correction.Replacements) != 1 {
		t.Fatalf("got %d replacements, want 1", len(correction.Replacements))
	}
	if correction.Replacements[0].Start != 0 || correction.Replacements[0].End != len(text) {
		t.Errorf("replacement range = [%d,%d), want the whole document",
			correction.Replacements[0].Start, correction.Replacements[0].End)
	}

	corrected, err := document.ApplyReplacements(text, correction.Replacements)
	if err != nil {
		t.Fatalf("ApplyReplacements: %v", err)
	}
	if corrected != "A test document without comments" {
		t.Errorf("corrected = %q", corrected)
	}
}
