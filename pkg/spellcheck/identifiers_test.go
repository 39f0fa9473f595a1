package spellcheck

import (
	"testing"
)

func TestExtractDeclaredNames(t *testing.T) {
	code := "function fooBarBaz(a) {}\n" +
		"let myVarName = 1;\n" +
		"const config = {};\n" +
		"var legacy = 2;\n" +
		"class Widget {}\n"

	ids := ExtractIdentifiers(code)

	for _, name := range []string{"fooBarBaz", "myVarName", "config", "legacy", "Widget"} {
		if !ids.Matches(name) {
			t.Errorf("Matches(%q) = false, want true", name)
		}
	}
	if ids.Matches("unrelatedWord") {
		t.Error("Matches(\"unrelatedWord\") = true, want false")
	}
}

func TestDeclarationKeywordNeedsWordBoundary(t *testing.T) {
	// "myclass" must not act as a class declaration keyword
	ids := ExtractIdentifiers("myclass Foo")
	if ids.Matches("Foo") {
		t.Error("Matches(\"Foo\") = true, want false")
	}
}

func TestExtractCallExpressions(t *testing.T) {
	ids := ExtractIdentifiers("doThing(x, y);\n")

	// Pieces left by comma and whitespace splitting still match
	for _, token := range []string{"doThing(x, y)", "doThing(x", "y)", "doThing"} {
		if !ids.Matches(token) {
			t.Errorf("Matches(%q) = false, want true", token)
		}
	}
	if ids.Matches("z)") {
		t.Error("Matches(\"z)\") = true, want false")
	}
}

func TestNestedCallTruncatesAtFirstCloser(t *testing.T) {
	ids := ExtractIdentifiers("outer(inner(x), y);")

	if ids.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ids.Len())
	}
	if !ids.Matches("outer(inner(x)") {
		t.Error("truncated call expression should be an entry")
	}
	if !ids.Matches("inner(x") {
		t.Error("Matches(\"inner(x\") = false, want true")
	}
	// The outer call's trailing arguments fall outside the truncated match
	if ids.Matches("y)") {
		t.Error("Matches(\"y)\") = true, want false")
	}
}

func TestCommentedOutCodeContributesNothing(t *testing.T) {
	code := "// function ghostName(a) {}\nlet real = 1;\n"

	ids := ExtractIdentifiers(code)
	if ids.Matches("ghostName") {
		t.Error("identifier from a comment should not be extracted")
	}
	if !ids.Matches("real") {
		t.Error("Matches(\"real\") = false, want true")
	}
}

func TestIdentifierNamesAllowDollarAndUnderscore(t *testing.T) {
	ids := ExtractIdentifiers("let _private = 1;\nconst $el = document;\n")

	if !ids.Matches("_private") {
		t.Error("Matches(\"_private\") = false, want true")
	}
	if !ids.Matches("$el") {
		t.Error("Matches(\"$el\") = false, want true")
	}
}

func TestEmptyTokenNeverMatches(t *testing.T) {
	ids := ExtractIdentifiers("let a = 1;")
	if ids.Matches("") {
		t.Error("Matches(\"\") = true, want false")
	}
}
