package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Dispatcher pushes a rendered message to a delivery channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, message string) error
}

// DeliveryError is a non-2xx webhook response. Body carries the raw upstream
// response for diagnostics.
type DeliveryError struct {
	Status int
	Body   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.Status, e.Body)
}

// WebhookDispatcher posts {"text": message} to a fixed endpoint. One attempt,
// no retry; anything outside 2xx is a DeliveryError.
type WebhookDispatcher struct {
	url   string
	httpc *http.Client
}

func NewWebhook(url string) *WebhookDispatcher {
	return &WebhookDispatcher{
		url:   url,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, message string) error {
	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("webhook call failed: %w", err)
	}
	defer func(c io.Closer) {
		err := c.Close()
		if err != nil {
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &DeliveryError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}
