package lang

import "strings"

// Rules is the zero-dependency fallback Capability. Segmentation splits on
// terminal punctuation and drops fragments shorter than MinSentence;
// entity recognition always reports nothing.
type Rules struct {
	MinSentence int
}

// NewRules returns a rule-based Capability with the given minimum fragment
// length. A min of 0 keeps every non-empty fragment.
func NewRules(minSentence int) *Rules {
	return &Rules{MinSentence: minSentence}
}

func (r *Rules) Segment(text string) ([]Sentence, error) {
	return SplitSentences(text, r.MinSentence), nil
}

func (r *Rules) Entities(text string) ([]Entity, error) {
	return nil, nil
}

// SplitSentences splits text on '.', '!' and '?', trims each fragment, and
// discards fragments whose length does not exceed minLen.
func SplitSentences(text string, minLen int) []Sentence {
	var out []Sentence
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if len(s) > minLen {
			out = append(out, Sentence{Text: s, Index: len(out)})
		}
	}

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return out
}
