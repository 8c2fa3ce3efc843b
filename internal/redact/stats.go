package redact

import "strings"

// Stats summarizes one redaction pass, derived from the redacted output.
type Stats struct {
	TotalRedactions int            `json:"total_redactions"`
	RedactionTypes  map[string]int `json:"redaction_types"`
	OriginalLength  int            `json:"original_length"`
	RedactedLength  int            `json:"redacted_length"`
}

// entityKinds are counted alongside the pattern detectors; keys are reported
// lowercased like the pattern types.
var entityKinds = []string{"PERSON", "ORG", "GPE", "LOC"}

// GetStats counts placeholder occurrences per type in redacted. The invariant
// TotalRedactions == sum(RedactionTypes) holds by construction.
func GetStats(original, redacted string) Stats {
	types := make(map[string]int)
	total := 0

	for _, d := range detectors {
		if n := strings.Count(redacted, placeholder(d.kind)); n > 0 {
			types[d.kind] = n
			total += n
		}
	}
	for _, kind := range entityKinds {
		if n := strings.Count(redacted, placeholder(kind)); n > 0 {
			types[strings.ToLower(kind)] = n
			total += n
		}
	}

	return Stats{
		TotalRedactions: total,
		RedactionTypes:  types,
		OriginalLength:  len(original),
		RedactedLength:  len(redacted),
	}
}
