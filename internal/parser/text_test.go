package parser

import (
	"strings"
	"testing"
)

func TestTextParser_BasicParagraphs(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	tr, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tr.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tr.Title)
	}
	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	if tr.Text != want {
		t.Errorf("expected %q, got %q", want, tr.Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tr, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tr.Title)
	}
	if tr.Text != "" {
		t.Errorf("expected empty text, got %q", tr.Text)
	}
}

func TestTextParser_MultipleBlankLines(t *testing.T) {
	// Consecutive blank lines should not produce empty paragraphs.
	input := "Para one.\n\n\n\nPara two."
	p := &TextParser{}
	tr, err := p.Parse(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Text != "Para one.\n\nPara two." {
		t.Errorf("unexpected text: %q", tr.Text)
	}
}

func TestTextParser_WhitespaceOnlyLines(t *testing.T) {
	input := "Para one.\n   \nPara two."
	p := &TextParser{}
	tr, err := p.Parse(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Text != "Para one.\n\nPara two." {
		t.Errorf("unexpected text: %q", tr.Text)
	}
}

func TestForFile(t *testing.T) {
	for _, name := range []string{"a.txt", "a.md", "a.csv", "a.html", "a.pdf", "a.docx"} {
		if _, err := ForFile(name); err != nil {
			t.Errorf("ForFile(%q): %v", name, err)
		}
	}
	if _, err := ForFile("a.mp3"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if IsSupportedExtension("meeting.MP3") {
		t.Error("mp3 should not be supported")
	}
	if !IsSupportedExtension("meeting.TXT") {
		t.Error("extension check should be case-insensitive")
	}
}
