// Package lang defines the linguistic capability the analysis pipeline
// depends on: sentence segmentation and named-entity recognition. Two
// implementations exist — a model-backed sidecar client and a punctuation
// rule fallback — behind one interface, so pipeline components never branch
// on "is the model loaded" themselves.
package lang

import "errors"

// Sentence is one segmentation unit, in source order.
type Sentence struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// Entity is a recognized span within the input text. Start and End are byte
// offsets into the string passed to Entities.
type Entity struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Capability is the segmentation/NER contract. Implementations must be safe
// for concurrent use.
type Capability interface {
	Segment(text string) ([]Sentence, error)
	Entities(text string) ([]Entity, error)
}

// ErrUnavailable signals that the model-backed capability could not be
// initialized. Callers degrade to rule-based behavior; they never surface
// this to their own callers.
var ErrUnavailable = errors.New("lang: capability unavailable")
