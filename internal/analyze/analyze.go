// Package analyze composes the transcript pipeline: extractive summary,
// action item extraction and PII redaction over one piece of text. Every
// stage is a pure transform; the engine only adds input bounding and latency
// accounting.
package analyze

import (
	"log/slog"
	"time"

	"github.com/talkvault/meetgest/internal/actions"
	"github.com/talkvault/meetgest/internal/lang"
	"github.com/talkvault/meetgest/internal/redact"
	"github.com/talkvault/meetgest/internal/summarize"
)

// Stage names used for latency accounting.
const (
	StageSummarize = "summarize"
	StageActions   = "actions"
	StageRedact    = "redact"
)

// Result is the full analysis of one transcript.
type Result struct {
	Summary        string               `json:"summary"`
	ActionItems    []actions.ActionItem `json:"action_items"`
	Redacted       string               `json:"redacted"`
	RedactionStats redact.Stats         `json:"redaction_stats"`
}

// Engine runs the three transforms against a shared language capability.
// Safe for concurrent use.
type Engine struct {
	summarizer *summarize.Summarizer
	extractor  *actions.Extractor
	redactor   *redact.Redactor
	stats      *StageStats
	log        *slog.Logger

	maxTextBytes int
}

// NewEngine builds the pipeline around one lazily-initialized language
// provider. maxTextBytes bounds every input; <= 0 disables the bound.
func NewEngine(provider *lang.Provider, maxTextBytes int, statsWindow time.Duration, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		summarizer:   summarize.New(provider),
		extractor:    actions.New(provider),
		redactor:     redact.New(provider, log),
		stats:        NewStageStats(statsWindow),
		log:          log,
		maxTextBytes: maxTextBytes,
	}
}

// Analyze runs all three stages over text and returns their combined output.
func (e *Engine) Analyze(text string) Result {
	text = e.bound(text)

	var res Result
	res.Summary = e.Summarize(text, 0)
	res.ActionItems = e.ExtractActions(text)
	res.Redacted = e.Redact(text)
	res.RedactionStats = redact.GetStats(text, res.Redacted)
	return res
}

// Summarize bounds the input and runs the extractive summarizer.
func (e *Engine) Summarize(text string, maxSentences int) string {
	defer e.timed(StageSummarize)()
	return e.summarizer.Summarize(e.bound(text), maxSentences)
}

// ExtractActions bounds the input and runs the action item extractor.
func (e *Engine) ExtractActions(text string) []actions.ActionItem {
	defer e.timed(StageActions)()
	return e.extractor.Extract(e.bound(text))
}

// Redact bounds the input and runs the PII redactor.
func (e *Engine) Redact(text string) string {
	defer e.timed(StageRedact)()
	return e.redactor.Redact(e.bound(text))
}

// RedactionStats reports placeholder counts for an (original, redacted) pair.
func (e *Engine) RedactionStats(original, redacted string) redact.Stats {
	return redact.GetStats(original, redacted)
}

// Stats exposes the rolling latency aggregate for the stats endpoint.
func (e *Engine) Stats() *StageStats {
	return e.stats
}

// bound truncates oversized input at a rune boundary. Detector regexes are
// linear-time, but unbounded transcripts still cost memory and latency.
func (e *Engine) bound(text string) string {
	if e.maxTextBytes <= 0 || len(text) <= e.maxTextBytes {
		return text
	}
	cut := e.maxTextBytes
	for cut > 0 && text[cut]&0xC0 == 0x80 {
		cut--
	}
	e.log.Warn("truncating oversized transcript", "bytes", len(text), "max", e.maxTextBytes)
	return text[:cut]
}

func (e *Engine) timed(stage string) func() {
	start := time.Now()
	return func() {
		e.stats.Record(stage, time.Since(start).Milliseconds())
	}
}
