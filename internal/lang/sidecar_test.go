package lang

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeSidecar(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/segment", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(segmentResponse{Sentences: []Sentence{
			{Text: "First sentence.", Index: 7}, // deliberately wrong index
			{Text: "Second sentence.", Index: 9},
		}})
	})
	mux.HandleFunc("/entities", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entitiesResponse{Spans: []Entity{
			{Label: "PERSON", Start: 0, End: 5, Text: "Alice"},
		}})
	})
	return httptest.NewServer(mux)
}

func TestDialHealthCheck(t *testing.T) {
	srv := newFakeSidecar(t)
	defer srv.Close()

	c, err := Dial(srv.URL)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if c == nil {
		t.Fatal("expected capability")
	}
}

func TestDialFailsWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := Dial(url); err == nil {
		t.Fatal("expected dial error for closed server")
	}
}

func TestSidecarSegmentRenumbersSentences(t *testing.T) {
	srv := newFakeSidecar(t)
	defer srv.Close()

	c, err := Dial(srv.URL)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	sents, err := c.Segment("First sentence. Second sentence.")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if len(sents) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sents))
	}
	for i, s := range sents {
		if s.Index != i {
			t.Errorf("sentence %d has index %d", i, s.Index)
		}
	}
}

func TestSidecarEntities(t *testing.T) {
	srv := newFakeSidecar(t)
	defer srv.Close()

	c, err := Dial(srv.URL)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	ents, err := c.Entities("Alice met Bob.")
	if err != nil {
		t.Fatalf("entities: %v", err)
	}
	if len(ents) != 1 || ents[0].Label != "PERSON" {
		t.Fatalf("unexpected entities: %+v", ents)
	}
}
