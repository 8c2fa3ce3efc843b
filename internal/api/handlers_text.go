package api

import (
	"encoding/json"
	"net/http"
)

// textRequest is the body for the synchronous analysis endpoints.
type textRequest struct {
	Text         string `json:"text"`
	MaxSentences int    `json:"max_sentences,omitempty"`
}

func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxTextBytes)+1024)
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	summary := s.orchestrator.Engine().Summarize(req.Text, req.MaxSentences)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"summary": summary})
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	items := s.orchestrator.Engine().ExtractActions(req.Text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"action_items": items})
}

func (s *Server) handleRedact(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	engine := s.orchestrator.Engine()
	redacted := engine.Redact(req.Text)
	stats := engine.RedactionStats(req.Text, redacted)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"redacted": redacted,
		"stats":    stats,
	})
}
