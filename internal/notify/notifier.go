package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/reposcout/reposcout/internal/resolver"
)

// Config holds webhook delivery settings.
type Config struct {
	// MaxRetries bounds delivery attempts beyond the first.
	MaxRetries int

	// RetryDelay is the base backoff between attempts.
	RetryDelay time.Duration

	// Timeout applies to the fallback HTTP client only.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		RetryDelay: time.Second,
		Timeout:    10 * time.Second,
	}
}

// HTTPClient interface for HTTP requests (for testing and dependency injection).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookSink posts resolution warnings to a configured webhook endpoint.
// It implements resolver.WarningSink. Delivery failures are logged and
// swallowed; warnings are observability data, never part of the resolution
// outcome.
type WebhookSink struct {
	url    string
	client HTTPClient
	config Config
	logger resolver.Logger
}

// NewWebhookSink creates a sink posting to url. A nil client falls back to a
// plain http.Client with the configured timeout.
func NewWebhookSink(url string, client HTTPClient, config Config, logger resolver.Logger) *WebhookSink {
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	return &WebhookSink{
		url:    url,
		client: client,
		config: config,
		logger: logger,
	}
}

// Notify delivers one warning payload. Rate-limit detail (remaining count,
// reset time) rides along in the JSON body.
func (w *WebhookSink) Notify(ctx context.Context, result *resolver.Result, warning resolver.Warning) {
	payload := map[string]any{
		"kind":    string(warning.Kind),
		"message": warning.Message,
		"repo":    result.Owner + "/" + result.Repo,
		"url":     result.NormalizedURL,
	}
	if warning.ResetAt != nil {
		payload["remaining"] = warning.Remaining
		payload["resetAt"] = warning.ResetAt.Format(time.RFC3339)
	}

	if err := w.sendWithRetry(ctx, payload); err != nil {
		w.logger.Error("warning webhook delivery failed", "url", w.url, "error", err)
	}
}

// sendWithRetry posts the payload with linear backoff between attempts.
func (w *WebhookSink) sendWithRetry(ctx context.Context, payload map[string]any) error {
	var lastErr error

	for attempt := 0; attempt <= w.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(w.config.RetryDelay * time.Duration(attempt)):
			}
		}

		if err := w.post(ctx, payload); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("failed after %d attempts: %w", w.config.MaxRetries+1, lastErr)
}

func (w *WebhookSink) post(ctx context.Context, payload map[string]any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook error: status %d", resp.StatusCode)
	}
	return nil
}
