package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// HTTPSynthesizer posts text to a speech endpoint. The service owns playback;
// the response body is discarded.
type HTTPSynthesizer struct {
	url    string // e.g. "http://localhost:50021/speak"
	lang   string
	client *http.Client
}

var _ Synthesizer = (*HTTPSynthesizer)(nil)

type speakRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

func NewHTTPSynthesizer(url string) *HTTPSynthesizer {
	return &HTTPSynthesizer{
		url:  url,
		lang: "ja",
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (h *HTTPSynthesizer) Synthesize(ctx context.Context, text string) error {
	jsonData, err := json.Marshal(speakRequest{Text: text, Lang: h.lang})
	if err != nil {
		return &SynthesisError{Reason: "marshal request", Wrapped: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return &SynthesisError{Reason: "create request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return &SynthesisError{Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SynthesisError{Reason: "unexpected status " + resp.Status}
	}
	return nil
}
