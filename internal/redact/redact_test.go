package redact

import (
	"strings"
	"testing"

	"github.com/talkvault/meetgest/internal/lang"
)

func patternOnly() *Redactor {
	return New(lang.Unavailable(), nil)
}

func TestRedactEmailAndPhone(t *testing.T) {
	r := patternOnly()
	got := r.Redact("Contact me at alice@example.com or 555-123-4567.")
	if !strings.Contains(got, "[EMAIL_REDACTED]") {
		t.Errorf("missing email placeholder: %q", got)
	}
	if !strings.Contains(got, "[PHONE_REDACTED]") {
		t.Errorf("missing phone placeholder: %q", got)
	}
	if strings.Contains(got, "@") {
		t.Errorf("redacted text still contains @: %q", got)
	}
}

func TestRedactPatternTypes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		token string
	}{
		{"ssn", "His SSN is 123-45-6789 apparently.", "[SSN_REDACTED]"},
		{"credit card", "Card 4111 1111 1111 1111 was charged.", "[CREDIT_CARD_REDACTED]"},
		{"ip", "The server at 10.0.0.1 went down.", "[IP_ADDRESS_REDACTED]"},
		{"url", "Docs are at https://example.com/page?id=1 now.", "[URL_REDACTED]"},
		{"zipcode", "Mail it to 94105 please.", "[ZIPCODE_REDACTED]"},
	}
	r := patternOnly()
	for _, tt := range tests {
		got := r.Redact(tt.in)
		if !strings.Contains(got, tt.token) {
			t.Errorf("%s: expected %s in %q", tt.name, tt.token, got)
		}
	}
}

func TestRedactEmptyInput(t *testing.T) {
	r := patternOnly()
	if got := r.Redact(""); got != "" {
		t.Errorf("empty input should pass through, got %q", got)
	}
	if got := r.Redact("  \n"); got != "  \n" {
		t.Errorf("whitespace input should pass through, got %q", got)
	}
}

func TestRedactIsIdempotent(t *testing.T) {
	r := patternOnly()
	inputs := []string{
		"Contact alice@example.com or 555-123-4567, SSN 123-45-6789.",
		"Visit https://example.com from 192.168.1.1, zip 94105-1234.",
		"Nothing sensitive in this sentence at all.",
	}
	for _, in := range inputs {
		once := r.Redact(in)
		twice := r.Redact(once)
		if once != twice {
			t.Errorf("not idempotent:\n once=%q\ntwice=%q", once, twice)
		}
	}
}

func TestRedactEntityPhase(t *testing.T) {
	provider := lang.NewProvider(func() (lang.Capability, error) {
		return stubNER{}, nil
	}, nil)
	r := New(provider, nil)

	got := r.Redact("Alice flew to Paris for Acme.")
	if !strings.Contains(got, "[PERSON_REDACTED]") {
		t.Errorf("missing person placeholder: %q", got)
	}
	if !strings.Contains(got, "[GPE_REDACTED]") {
		t.Errorf("missing gpe placeholder: %q", got)
	}
	if !strings.Contains(got, "[ORG_REDACTED]") {
		t.Errorf("missing org placeholder: %q", got)
	}
	if strings.Contains(got, "Alice") || strings.Contains(got, "Paris") || strings.Contains(got, "Acme") {
		t.Errorf("entity text survived redaction: %q", got)
	}
}

// stubNER recognizes the fixed names used in TestRedactEntityPhase, plus one
// ignorable label and one out-of-range span.
type stubNER struct{}

func (stubNER) Segment(text string) ([]lang.Sentence, error) {
	return lang.SplitSentences(text, 0), nil
}

func (stubNER) Entities(text string) ([]lang.Entity, error) {
	var ents []lang.Entity
	for _, probe := range []struct {
		name  string
		label string
	}{
		{"Alice", "PERSON"},
		{"Paris", "GPE"},
		{"Acme", "ORG"},
		{"flew", "VERB"}, // not a sensitive label, must be ignored
	} {
		if i := strings.Index(text, probe.name); i >= 0 {
			ents = append(ents, lang.Entity{Label: probe.label, Start: i, End: i + len(probe.name), Text: probe.name})
		}
	}
	ents = append(ents, lang.Entity{Label: "PERSON", Start: len(text) + 5, End: len(text) + 9})
	return ents, nil
}

func TestGetStatsCountsAndInvariant(t *testing.T) {
	r := patternOnly()
	original := "Contact me at alice@example.com or 555-123-4567."
	redacted := r.Redact(original)
	stats := GetStats(original, redacted)

	if stats.RedactionTypes["email"] != 1 {
		t.Errorf("email count = %d, want 1", stats.RedactionTypes["email"])
	}
	if stats.RedactionTypes["phone"] != 1 {
		t.Errorf("phone count = %d, want 1", stats.RedactionTypes["phone"])
	}
	if stats.TotalRedactions != 2 {
		t.Errorf("total = %d, want 2", stats.TotalRedactions)
	}

	sum := 0
	for _, n := range stats.RedactionTypes {
		sum += n
	}
	if stats.TotalRedactions != sum {
		t.Errorf("total %d != sum of types %d", stats.TotalRedactions, sum)
	}
	if stats.OriginalLength != len(original) || stats.RedactedLength != len(redacted) {
		t.Errorf("lengths not recorded: %+v", stats)
	}
}

func TestGetStatsIncludesEntityTypes(t *testing.T) {
	stats := GetStats("Alice went home.", "[PERSON_REDACTED] went to [GPE_REDACTED].")
	if stats.RedactionTypes["person"] != 1 || stats.RedactionTypes["gpe"] != 1 {
		t.Errorf("entity types not counted: %+v", stats.RedactionTypes)
	}
	if stats.TotalRedactions != 2 {
		t.Errorf("total = %d, want 2", stats.TotalRedactions)
	}
}

func TestGetStatsNoRedactions(t *testing.T) {
	stats := GetStats("hello there", "hello there")
	if stats.TotalRedactions != 0 || len(stats.RedactionTypes) != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
