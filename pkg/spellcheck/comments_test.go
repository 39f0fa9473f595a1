package spellcheck

import (
	"strings"
	"testing"
)

func TestExtractLineComment(t *testing.T) {
	text := "let x = 1; // trailing note\nlet y = 2;\n"

	spans := ExtractComments(text)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Text != "// trailing note" {
		t.Errorf("span text = %q, want %q", spans[0].Text, "// trailing note")
	}
	if want := strings.Index(text, "//"); spans[0].Start != want {
		t.Errorf("span start = %d, want %d", spans[0].Start, want)
	}
}

func TestExtractBlockComments(t *testing.T) {
	text := "a /* one */ b /* two */"

	spans := ExtractComments(text)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Text != "/* one */" || spans[0].Start != 2 {
		t.Errorf("first span = %q at %d, want %q at 2", spans[0].Text, spans[0].Start, "/* one */")
	}
	if spans[1].Text != "/* two */" || spans[1].Start != 14 {
		t.Errorf("second span = %q at %d, want %q at 14", spans[1].Text, spans[1].Start, "/* two */")
	}
}

func TestExtractMultiLineBlockComment(t *testing.T) {
	text := "x\n/* first line\nsecond line */\ny"

	spans := ExtractComments(text)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Start != 2 {
		t.Errorf("span start = %d, want 2", spans[0].Start)
	}
	if !strings.Contains(spans[0].Text, "second line") {
		t.Errorf("span text %q should cover both lines", spans[0].Text)
	}
}

func TestUnterminatedBlockCommentYieldsNothing(t *testing.T) {
	spans := ExtractComments("code(); /* never closed")
	if len(spans) != 0 {
		t.Errorf("got %d spans, want 0 for unterminated block comment", len(spans))
	}
}

func TestCommentOpenersInsideComments(t *testing.T) {
	// A block opener inside a line comment belongs to the line comment
	spans := ExtractComments("// has /* inside\nafter();\n")
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Text != "// has /* inside" {
		t.Errorf("span text = %q", spans[0].Text)
	}

	// A line opener inside a block comment belongs to the block comment
	spans = ExtractComments("/* x // y */ z();")
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Text != "/* x // y */" {
		t.Errorf("span text = %q", spans[0].Text)
	}
}

func TestExtractCommentsInDocumentOrder(t *testing.T) {
	text := "// first\ncode();\n/* second */\nmore(); // third\n"

	spans := ExtractComments(text)
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(spans))
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start <= spans[i-1].Start {
			t.Errorf("spans out of order: %d then %d", spans[i-1].Start, spans[i].Start)
		}
	}
}

func TestExtractCommentsEmptyText(t *testing.T) {
	if spans := ExtractComments(""); len(spans) != 0 {
		t.Errorf("got %d spans for empty text, want 0", len(spans))
	}
	if spans := ExtractComments("no comments here\n"); len(spans) != 0 {
		t.Errorf("got %d spans for comment-free text, want 0", len(spans))
	}
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"line comment removed to end of line", "let a = 1; // note\nlet b = 2;", "let a = 1; \nlet b = 2;"},
		{"block comment removed inline", "let a /* mid */ = 1;", "let a  = 1;"},
		{"unterminated block stays", "a(); /* open", "a(); /* open"},
		{"no comments", "plain();", "plain();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripComments(tt.text); got != tt.want {
				t.Errorf("stripComments(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
