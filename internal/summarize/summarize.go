// Package summarize builds extractive summaries of meeting transcripts by
// scoring and selecting whole sentences.
package summarize

import (
	"sort"
	"strings"

	"github.com/talkvault/meetgest/internal/lang"
)

// EmptySummary is returned for empty or whitespace-only input.
const EmptySummary = "No content to summarize"

// DefaultMaxSentences is used when the caller passes a non-positive limit.
const DefaultMaxSentences = 5

// minSummaryLen filters out noise fragments before scoring.
const minSummaryLen = 20

// earlyBias boosts sentences in the first 30% of the transcript; agenda and
// intro sentences tend to carry the meeting's framing.
const earlyBias = 1.2

// Summarizer selects the most summary-worthy sentences from a transcript.
type Summarizer struct {
	provider *lang.Provider
}

func New(provider *lang.Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Summarize returns up to maxSentences sentences joined by single spaces.
// With the model backend available, sentences are ranked by word count with
// an early-position boost and emitted in score order. Without it, a
// first/middle/last selection is used instead.
func (s *Summarizer) Summarize(text string, maxSentences int) string {
	if strings.TrimSpace(text) == "" {
		return EmptySummary
	}
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	cap, err := s.provider.Get()
	if err != nil {
		return simpleSummarize(text, maxSentences)
	}

	segs, err := cap.Segment(text)
	if err != nil {
		return simpleSummarize(text, maxSentences)
	}

	var sentences []string
	for _, seg := range segs {
		t := strings.TrimSpace(seg.Text)
		if len(t) > minSummaryLen {
			sentences = append(sentences, t)
		}
	}

	if len(sentences) <= maxSentences {
		return strings.Join(sentences, " ")
	}

	type scored struct {
		text  string
		score float64
	}
	ranked := make([]scored, 0, len(sentences))
	for i, sentence := range sentences {
		score := float64(len(strings.Fields(sentence)))
		if float64(i) < float64(len(sentences))*0.3 {
			score *= earlyBias
		}
		ranked = append(ranked, scored{text: sentence, score: score})
	}

	// Stable keeps original order on ties. Output is deliberately in score
	// order, not chronological order.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	top := make([]string, 0, maxSentences)
	for _, r := range ranked[:maxSentences] {
		top = append(top, r.text)
	}
	return strings.Join(top, " ")
}

// simpleSummarize is the degraded path: first sentence, a slice from the
// middle third, and the last sentence.
func simpleSummarize(text string, maxSentences int) string {
	segs := lang.SplitSentences(text, minSummaryLen)
	sentences := make([]string, 0, len(segs))
	for _, seg := range segs {
		sentences = append(sentences, seg.Text)
	}

	if len(sentences) == 0 {
		return EmptySummary
	}
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, ". ") + "."
	}

	selected := []string{sentences[0]}
	if maxSentences > 2 {
		middle := sentences[len(sentences)/3 : 2*len(sentences)/3]
		if n := maxSentences - 2; len(middle) > n {
			middle = middle[:n]
		}
		selected = append(selected, middle...)
	}
	if maxSentences > 1 {
		selected = append(selected, sentences[len(sentences)-1])
	}
	return strings.Join(selected, ". ") + "."
}
