package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sidecar is the model-backed Capability. It calls a linguistic sidecar
// (sentence segmentation + NER) over HTTP. Safe for concurrent use after
// Dial succeeds.
type Sidecar struct {
	baseURL string
	http    *http.Client
}

const sidecarTimeout = 10 * time.Second

// Dial verifies the sidecar is reachable and returns a Capability bound to
// it. A failed health check is an initialization failure: the Provider turns
// it into a permanent ErrUnavailable.
func Dial(baseURL string) (Capability, error) {
	c := &Sidecar{
		baseURL: baseURL,
		http:    &http.Client{Timeout: sidecarTimeout},
	}

	ctx, cancel := context.WithTimeout(context.Background(), sidecarTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("sidecar: request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sidecar: health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sidecar: health check status %d", resp.StatusCode)
	}
	return c, nil
}

type segmentResponse struct {
	Sentences []Sentence `json:"sentences"`
}

func (c *Sidecar) Segment(text string) ([]Sentence, error) {
	var out segmentResponse
	if err := c.post("/segment", text, &out); err != nil {
		return nil, err
	}
	// Trust text order, not sidecar numbering.
	for i := range out.Sentences {
		out.Sentences[i].Index = i
	}
	return out.Sentences, nil
}

type entitiesResponse struct {
	Spans []Entity `json:"spans"`
}

func (c *Sidecar) Entities(text string) ([]Entity, error) {
	var out entitiesResponse
	if err := c.post("/entities", text, &out); err != nil {
		return nil, err
	}
	return out.Spans, nil
}

func (c *Sidecar) post(path, text string, out any) error {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("sidecar: marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), sidecarTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sidecar: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sidecar: %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sidecar: %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("sidecar: decode: %w", err)
	}
	return nil
}
