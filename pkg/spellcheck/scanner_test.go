package spellcheck

import (
	"strings"
	"testing"
)

func TestScanTextChecksCommentsOnly(t *testing.T) {
	dict := fakeDict{misspelled: map[string][]string{
		"tset":  {"test"},
		"wrold": {"world"},
	}}
	text := "function doThing(x, y) {\n" +
		"  let wrold = 1;\n" +
		"  // calls doThing(x, y) with a tset\n" +
		"  return doThing(wrold, 2);\n" +
		"}\n"

	findings := ScanText(text, jsLang(t), dict, nil)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}

	diag := findings[0].Diagnostic
	if diag.Code != "tset" {
		t.Errorf("Code = %q, want %q", diag.Code, "tset")
	}
	if got := text[diag.Start:diag.End]; got != "tset" {
		t.Errorf("range covers %q, want %q", got, "tset")
	}
}

func TestScanTextProseChecksWholeDocument(t *testing.T) {
	lang, ok := GetLanguageByExtension("README.md")
	if !ok {
		t.Fatal("markdown not registered as prose")
	}
	if !lang.Prose {
		t.Fatal("markdown should be a prose kind")
	}

	dict := fakeDict{misspelled: map[string][]string{
		"tset":     {"test"},
		"dothingx": {"something"},
	}}
	text := "doThing(x, y) has a tset"

	findings := ScanText(text, lang, dict, nil)
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2 (no identifier exclusion in prose): %+v", len(findings), findings)
	}
	if got := strings.Index(text, "tset"); findings[1].Diagnostic.Start != got {
		t.Errorf("second finding start = %d, want %d", findings[1].Diagnostic.Start, got)
	}
}

func TestScanTextFindingsInDocumentOrder(t *testing.T) {
	dict := fakeDict{misspelled: map[string][]string{
		"tset":  {"test"},
		"wrold": {"world"},
	}}
	text := "// a tset first\nrun();\n/* then a wrold */\n"

	findings := ScanText(text, jsLang(t), dict, nil)
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2", len(findings))
	}
	if findings[0].Diagnostic.Start >= findings[1].Diagnostic.Start {
		t.Errorf("findings out of order: %d then %d",
			findings[0].Diagnostic.Start, findings[1].Diagnostic.Start)
	}
}

func TestGetLanguageByName(t *testing.T) {
	if _, ok := GetLanguageByName("typescript"); !ok {
		t.Error("name lookup should be case-insensitive")
	}
	if _, ok := GetLanguageByName("Ruby"); ok {
		t.Error("unsupported language should not resolve")
	}
}

func TestGetLanguageByExtension(t *testing.T) {
	tests := []struct {
		path string
		name string
		ok   bool
	}{
		{"src/app.js", "JavaScript", true},
		{"src/App.JSX", "JavaScript", true},
		{"lib/mod.mjs", "JavaScript", true},
		{"src/index.ts", "TypeScript", true},
		{"src/view.tsx", "TypeScript", true},
		{"notes.txt", "Plain Text", true},
		{"README.md", "Plain Text", true},
		{"script.py", "", false},
		{"Makefile", "", false},
	}

	for _, tt := range tests {
		lang, ok := GetLanguageByExtension(tt.path)
		if ok != tt.ok {
			t.Errorf("GetLanguageByExtension(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if ok && lang.Name != tt.name {
			t.Errorf("GetLanguageByExtension(%q) = %q, want %q", tt.path, lang.Name, tt.name)
		}
	}
}

func TestCountTokens(t *testing.T) {
	text := "// one two\nrun();\n// three\n"
	if got := CountTokens(text, jsLang(t)); got != 5 {
		t.Errorf("CountTokens = %d, want 5", got)
	}

	lang, _ := GetLanguageByExtension("notes.txt")
	if got := CountTokens("just four words here", lang); got != 4 {
		t.Errorf("prose CountTokens = %d, want 4", got)
	}
}
