package summarize

import (
	"strings"
	"testing"

	"github.com/talkvault/meetgest/internal/lang"
)

func modelProvider() *lang.Provider {
	// Rule segmentation standing in for the model backend; the summarizer
	// applies its own length filter on top.
	return lang.NewProvider(func() (lang.Capability, error) {
		return lang.NewRules(0), nil
	}, nil)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := New(modelProvider())
	if got := s.Summarize("", 5); got != EmptySummary {
		t.Errorf("empty input: got %q", got)
	}
	if got := s.Summarize("   \n ", 5); got != EmptySummary {
		t.Errorf("whitespace input: got %q", got)
	}
}

func TestSummarizeFewSentencesReturnedInOrder(t *testing.T) {
	s := New(modelProvider())
	text := "The quarterly planning meeting started on time. Everyone reviewed the budget numbers together."
	got := s.Summarize(text, 5)
	want := "The quarterly planning meeting started on time Everyone reviewed the budget numbers together"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummarizeSelectsTopScoredSentences(t *testing.T) {
	s := New(modelProvider())
	// Six qualifying sentences, max 2: the longest (word-richest) win.
	text := strings.Join([]string{
		"Short opening remark here today.",
		"This second sentence contains a great many words about the roadmap and staffing plans for next year.",
		"A mid sized sentence about logistics.",
		"Another mid sized sentence about catering.",
		"This closing sentence also contains a great many words about deadlines and deliverables and reviews.",
		"Tiny final note for everyone.",
	}, " ")
	got := s.Summarize(text, 2)
	if !strings.Contains(got, "roadmap and staffing plans") {
		t.Errorf("expected the longest sentence in summary, got %q", got)
	}
	if !strings.Contains(got, "deadlines and deliverables") {
		t.Errorf("expected the second longest sentence in summary, got %q", got)
	}
	if parts := strings.Count(got, "words about"); parts != 2 {
		t.Errorf("expected exactly the two scored sentences, got %q", got)
	}
}

func TestSummarizeEarlyPositionBoost(t *testing.T) {
	s := New(modelProvider())
	// Two sentences with equal word counts; the earlier one gets the 1.2x
	// boost and must be selected.
	text := strings.Join([]string{
		"Alpha beta gamma delta epsilon zeta eta theta iota kappa.",
		"Filler sentence number one with several words inside it.",
		"Filler sentence number two with several words inside it.",
		"Filler sentence number three with more words inside it.",
		"Filler sentence number four with several words inside it.",
		"Omega psi chi phi upsilon tau sigma rho pi omicron.",
	}, " ")
	got := s.Summarize(text, 1)
	if !strings.Contains(got, "Alpha beta gamma") {
		t.Errorf("expected early sentence to win on boost, got %q", got)
	}
}

func TestSummarizeFallbackFirstMiddleLast(t *testing.T) {
	s := New(lang.Unavailable())
	text := strings.Join([]string{
		"Sentence number one is long enough.",
		"Sentence number two is long enough.",
		"Sentence number three is long enough.",
		"Sentence number four is long enough.",
		"Sentence number five is long enough.",
		"Sentence number six is long enough.",
	}, " ")
	got := s.Summarize(text, 3)
	if !strings.HasPrefix(got, "Sentence number one") {
		t.Errorf("fallback should start with the first sentence, got %q", got)
	}
	if !strings.Contains(got, "Sentence number six") {
		t.Errorf("fallback should include the last sentence, got %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("fallback summary should end with a period, got %q", got)
	}
	if n := strings.Count(got, "Sentence number"); n != 3 {
		t.Errorf("expected 3 sentences in fallback summary, got %d: %q", n, got)
	}
}

func TestSummarizeFallbackFewSentences(t *testing.T) {
	s := New(lang.Unavailable())
	text := "Only sentence one is long enough. Only sentence two is long enough."
	got := s.Summarize(text, 5)
	want := "Only sentence one is long enough. Only sentence two is long enough."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummarizeDefaultsMaxSentences(t *testing.T) {
	s := New(modelProvider())
	text := "A single qualifying sentence lives here."
	if got := s.Summarize(text, 0); got != "A single qualifying sentence lives here" {
		t.Errorf("got %q", got)
	}
}
