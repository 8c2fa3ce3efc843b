// Package actions extracts structured action items from meeting transcripts
// using keyword gating plus ordered regex patterns for assignee, due date and
// priority.
package actions

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/talkvault/meetgest/internal/lang"
)

// ActionItem is one task recovered from a transcript sentence.
type ActionItem struct {
	ID            int     `json:"id"`
	Description   string  `json:"description"`
	AssignedTo    *string `json:"assigned_to"`
	DueDate       *string `json:"due_date"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	ExtractedFrom string  `json:"extracted_from"`
}

// Priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// StatusPending is the only status the extractor assigns; downstream systems
// move items through their own lifecycle.
const StatusPending = "pending"

// minActionSentence is the fallback splitter's noise threshold.
const minActionSentence = 10

// dedupThreshold is the Jaccard similarity at or above which a later item is
// dropped as a duplicate of an earlier one.
const dedupThreshold = 0.7

// actionKeywords gate which sentences are considered at all. Substring match,
// case-insensitive.
var actionKeywords = []string{
	"will", "shall", "should", "need to", "must", "have to", "going to",
	"action item", "todo", "task", "follow up", "deliverable", "deadline",
	"assign", "responsible", "owner", "due", "complete", "finish",
}

// Assignee patterns, tried in order; first match wins. The name heuristic is
// a capitalized word pair, so "we will" does not become an assignee.
var assigneePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:assigned to|assign to|responsible)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?i:will|shall|should)`),
	regexp.MustCompile(`@([A-Za-z]+)`),
}

// Due date patterns, tried in order; the captured phrase goes through
// NormalizeDate and is kept verbatim when normalization fails.
var duePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)due\s+(?:date|by|on)?\s*:?\s*([^.\n,]{5,30})`),
	regexp.MustCompile(`(?i)deadline[:\-]?\s*([^.\n,]{5,30})`),
	regexp.MustCompile(`(?i)by\s+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?)`),
	regexp.MustCompile(`(?i)on\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
	regexp.MustCompile(`(?i)by\s+((?:next\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))`),
	regexp.MustCompile(`(?i)(next\s+(?:week|month|monday|tuesday|wednesday|thursday|friday|saturday|sunday))`),
	regexp.MustCompile(`(?i)(tomorrow|today|this\s+week|next\s+week)`),
}

var highPriorityWords = []string{"urgent", "asap", "immediately", "critical", "important"}
var lowPriorityWords = []string{"when possible", "eventually", "low priority"}

// Extractor finds action items in transcript text.
type Extractor struct {
	provider *lang.Provider
	now      func() time.Time
}

func New(provider *lang.Provider) *Extractor {
	return &Extractor{provider: provider, now: time.Now}
}

// NewAt pins the extractor's clock; relative due dates ("tomorrow", "next
// friday") resolve against it. Used in tests.
func NewAt(provider *lang.Provider, now func() time.Time) *Extractor {
	return &Extractor{provider: provider, now: now}
}

// Extract returns the deduplicated action items found in text, in sentence
// order. Empty input yields an empty (non-nil) slice.
func (e *Extractor) Extract(text string) []ActionItem {
	items := []ActionItem{}
	if strings.TrimSpace(text) == "" {
		return items
	}

	for _, sentence := range e.sentences(text) {
		if !containsActionKeyword(sentence.Text) {
			continue
		}
		items = append(items, ActionItem{
			ID:            sentence.Index + 1,
			Description:   cleanDescription(sentence.Text),
			AssignedTo:    extractAssignee(sentence.Text),
			DueDate:       e.extractDueDate(sentence.Text),
			Priority:      determinePriority(sentence.Text),
			Status:        StatusPending,
			ExtractedFrom: "Sentence " + strconv.Itoa(sentence.Index+1),
		})
	}

	return deduplicate(items)
}

func (e *Extractor) sentences(text string) []lang.Sentence {
	if cap, err := e.provider.Get(); err == nil {
		if sents, err := cap.Segment(text); err == nil {
			out := make([]lang.Sentence, 0, len(sents))
			for _, s := range sents {
				t := strings.TrimSpace(s.Text)
				if t != "" {
					out = append(out, lang.Sentence{Text: t, Index: len(out)})
				}
			}
			return out
		}
	}
	return lang.SplitSentences(text, minActionSentence)
}

func containsActionKeyword(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, kw := range actionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func extractAssignee(sentence string) *string {
	for _, re := range assigneePatterns {
		if m := re.FindStringSubmatch(sentence); m != nil {
			name := strings.TrimSpace(m[1])
			return &name
		}
	}
	return nil
}

func (e *Extractor) extractDueDate(sentence string) *string {
	for _, re := range duePatterns {
		m := re.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		phrase := strings.TrimSpace(m[1])
		if iso, ok := NormalizeDate(phrase, e.now()); ok {
			return &iso
		}
		return &phrase
	}
	return nil
}

func determinePriority(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, w := range highPriorityWords {
		if strings.Contains(lower, w) {
			return PriorityHigh
		}
	}
	for _, w := range lowPriorityWords {
		if strings.Contains(lower, w) {
			return PriorityLow
		}
	}
	return PriorityMedium
}

// cleanDescription collapses whitespace, capitalizes the first letter, and
// guarantees terminal punctuation.
func cleanDescription(sentence string) string {
	desc := strings.Join(strings.Fields(sentence), " ")
	if desc == "" {
		return desc
	}
	runes := []rune(desc)
	runes[0] = unicode.ToUpper(runes[0])
	desc = string(runes)
	if !strings.HasSuffix(desc, ".") && !strings.HasSuffix(desc, "!") && !strings.HasSuffix(desc, "?") {
		desc += "."
	}
	return desc
}

// deduplicate walks items in extraction order and drops any whose description
// is Jaccard-similar (>= dedupThreshold) to an already-kept item.
func deduplicate(items []ActionItem) []ActionItem {
	if len(items) <= 1 {
		return items
	}
	unique := []ActionItem{}
	for _, item := range items {
		dup := false
		for _, kept := range unique {
			if Jaccard(item.Description, kept.Description) >= dedupThreshold {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, item)
		}
	}
	return unique
}

// Jaccard computes |A∩B| / |A∪B| over the lowercased word sets of two
// strings. Empty inputs yield 0.
func Jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
