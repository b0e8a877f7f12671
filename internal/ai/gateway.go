package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable marks any gateway failure: unreachable service, timeout,
// non-200 response or a malformed body.
var ErrUnavailable = errors.New("analysis unavailable")

// Gateway forwards snapshots to the external analysis service over HTTP.
type Gateway struct {
	baseURL string
	client  *http.Client
}

// NewGateway returns a Gateway for the service at baseURL
// (e.g. http://localhost:8000).
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *Gateway) Analyze(ctx context.Context, card CardSnapshot) (Result, error) {
	body, err := json.Marshal(card)
	if err != nil {
		return Result{}, fmt.Errorf("%w: encode request: %v", ErrUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: service returned %d", ErrUnavailable, resp.StatusCode)
	}
	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return out, nil
}
