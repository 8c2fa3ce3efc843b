package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_FlattensHeadingsAndBody(t *testing.T) {
	input := `# Weekly Sync

Intro text.

## Action Review

Bob will update the roadmap.
`
	p := &MarkdownParser{}
	tr, err := p.Parse(strings.NewReader(input), "sync.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Title != "sync" {
		t.Errorf("expected title %q, got %q", "sync", tr.Title)
	}
	for _, want := range []string{"Weekly Sync", "Intro text.", "Action Review", "Bob will update the roadmap."} {
		if !strings.Contains(tr.Text, want) {
			t.Errorf("expected text to contain %q, got %q", want, tr.Text)
		}
	}
}

func TestMarkdownParser_CodeBlocksKept(t *testing.T) {
	input := "Some intro.\n\n```\nGET /api/users\n```\n\nMore text after code.\n"
	p := &MarkdownParser{}
	tr, err := p.Parse(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(tr.Text, "GET /api/users") {
		t.Errorf("expected code block content, got %q", tr.Text)
	}
	if !strings.Contains(tr.Text, "More text after code.") {
		t.Errorf("expected post-code text, got %q", tr.Text)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	tr, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Text != "" {
		t.Errorf("expected empty text, got %q", tr.Text)
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		tr, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if tr.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, tr.Title)
		}
	}
}

func TestCSVParser_SpeakerRows(t *testing.T) {
	input := "speaker,text\nAlice,We need to finalize the budget.\nBob,I will send it tomorrow.\n"
	p := &CSVParser{}
	tr, err := p.Parse(strings.NewReader(input), "meeting.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(tr.Text, "Alice: We need to finalize the budget.") {
		t.Errorf("expected speaker-prefixed line, got %q", tr.Text)
	}
	if strings.Contains(tr.Text, "speaker") {
		t.Errorf("header row should be dropped, got %q", tr.Text)
	}
}

func TestHTMLParser_ParagraphsAndTitle(t *testing.T) {
	input := `<html><head><title>Standup Notes</title><style>p{color:red}</style></head>
<body><h1>Standup</h1><p>Carol will deploy the fix today.</p><script>alert(1)</script></body></html>`
	p := &HTMLParser{}
	tr, err := p.Parse(strings.NewReader(input), "standup.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Title != "Standup Notes" {
		t.Errorf("expected title from <title>, got %q", tr.Title)
	}
	if !strings.Contains(tr.Text, "Carol will deploy the fix today.") {
		t.Errorf("expected paragraph text, got %q", tr.Text)
	}
	if strings.Contains(tr.Text, "alert") || strings.Contains(tr.Text, "color") {
		t.Errorf("script/style content leaked: %q", tr.Text)
	}
}
