package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProbeAdapter checks whether an HTTP endpoint answers.
type HTTPProbeAdapter interface {
	// Probe performs one GET and returns nil when the server answered with a
	// non-error status.
	Probe(ctx context.Context, url string) error
}

// LocalHTTPProbeAdapter probes with a net/http client.
type LocalHTTPProbeAdapter struct {
	client *http.Client
}

// NewLocalHTTPProbeAdapter constructs a probe whose single request is
// bounded by timeout.
func NewLocalHTTPProbeAdapter(timeout time.Duration) *LocalHTTPProbeAdapter {
	return &LocalHTTPProbeAdapter{client: &http.Client{Timeout: timeout}}
}

// Probe sends a GET to url. Statuses of 400 and above count as not ready.
func (a *LocalHTTPProbeAdapter) Probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}

	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	return nil
}
