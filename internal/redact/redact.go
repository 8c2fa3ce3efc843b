// Package redact anonymizes PII in transcript text. Redaction runs in two
// phases: an ordered list of regex detectors for structured data, then an
// optional NER phase for names, organizations and places. Placeholder tokens
// are chosen so no detector can re-match them, which makes redaction
// idempotent.
package redact

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/talkvault/meetgest/internal/lang"
)

// detector pairs a PII type with its compiled pattern. Application order is
// part of the contract: later detectors run over text already carrying
// earlier placeholders.
type detector struct {
	kind string
	re   *regexp.Regexp
}

// detectors is the fixed pattern phase, applied in slice order.
var detectors = []detector{
	{"email", regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)},
	{"phone", regexp.MustCompile(`\b(?:\+?1[-.]?)?\(?[0-9]{3}\)?[-.]?[0-9]{3}[-.]?[0-9]{4}\b`)},
	{"ssn", regexp.MustCompile(`\b\d{3}-?\d{2}-?\d{4}\b`)},
	{"credit_card", regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{4}\b`)},
	{"ip_address", regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`)},
	{"url", regexp.MustCompile(`(?i)https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)},
	{"zipcode", regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)},
}

// sensitiveLabels are the entity classes removed in the NER phase.
var sensitiveLabels = map[string]bool{
	"PERSON": true,
	"ORG":    true,
	"GPE":    true,
	"LOC":    true,
}

// Redactor anonymizes PII in text.
type Redactor struct {
	provider *lang.Provider
	log      *slog.Logger
}

func New(provider *lang.Provider, log *slog.Logger) *Redactor {
	if log == nil {
		log = slog.Default()
	}
	return &Redactor{provider: provider, log: log}
}

// Redact replaces detected PII with [TYPE_REDACTED] placeholders. The entity
// phase is skipped silently when the model backend is unavailable; it never
// fails the call.
func (r *Redactor) Redact(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	redacted := text
	for _, d := range detectors {
		redacted = d.re.ReplaceAllString(redacted, placeholder(d.kind))
	}

	cap, err := r.provider.Get()
	if err != nil {
		return redacted
	}
	return r.redactEntities(cap, redacted)
}

// redactEntities substitutes recognized spans back-to-front so earlier
// replacements never shift offsets of spans still pending.
func (r *Redactor) redactEntities(cap lang.Capability, text string) string {
	entities, err := cap.Entities(text)
	if err != nil {
		r.log.Warn("entity recognition failed, keeping pattern-phase output", "error", err)
		return text
	}

	spans := make([]lang.Entity, 0, len(entities))
	for _, e := range entities {
		if !sensitiveLabels[e.Label] {
			continue
		}
		if e.Start < 0 || e.End > len(text) || e.Start >= e.End {
			r.log.Warn("dropping out-of-range entity span", "label", e.Label, "start", e.Start, "end", e.End)
			continue
		}
		spans = append(spans, e)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start > spans[j].Start })

	for _, sp := range spans {
		text = text[:sp.Start] + placeholder(sp.Label) + text[sp.End:]
	}
	return text
}

func placeholder(kind string) string {
	return "[" + strings.ToUpper(kind) + "_REDACTED]"
}
