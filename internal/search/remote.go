// internal/search/remote.go
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 512

// RemoteClient talks to a hosted search index over HTTP
type RemoteClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewRemoteClient creates a client for the given endpoint. A zero timeout
// leaves the http.Client without a deadline; callers still pass a context.
func NewRemoteClient(endpoint, apiKey string, timeout time.Duration) *RemoteClient {
	return &RemoteClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

type remoteQuery struct {
	Term  string `json:"term"`
	Mode  Mode   `json:"mode"`
	Limit int    `json:"limit,omitempty"`
}

type remoteResponse struct {
	Hits []struct {
		ID       string  `json:"id"`
		Score    float64 `json:"score"`
		Document Hit     `json:"document"`
	} `json:"hits"`
	Count   int             `json:"count"`
	Elapsed json.RawMessage `json:"elapsed"`
}

// Search posts the query and decodes the hits. A "null" body yields a nil Response.
func (c *RemoteClient) Search(ctx context.Context, params Params) (*Response, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("search endpoint is not configured")
	}
	mode := params.Mode
	if mode == "" {
		mode = ModeFulltext
	}

	q, err := json.Marshal(remoteQuery{Term: params.Term, Mode: mode, Limit: params.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	form := url.Values{}
	form.Set("q", string(q))

	target := c.endpoint + "/search"
	if c.apiKey != "" {
		target += "?" + url.Values{"api-key": {c.apiKey}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: msg}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var raw remoteResponse
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	out := &Response{Hits: make([]Hit, 0, len(raw.Hits))}
	for _, h := range raw.Hits {
		out.Hits = append(out.Hits, h.Document)
	}
	return out, nil
}
