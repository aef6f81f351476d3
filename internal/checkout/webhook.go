package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Sink receives a finalized order. Any error means the submission
// failed; the caller does not distinguish transport failures from
// rejections.
type Sink interface {
	Submit(ctx context.Context, order *Order) error
}

// WebhookSink posts orders as JSON to the restaurant's automation
// webhook. Success is any 2xx. No timeout is set on the client: the
// caller waits for the platform's own limits, like the site did.
type WebhookSink struct {
	url    string
	client *http.Client
}

func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		url:    url,
		client: &http.Client{},
	}
}

func (w *WebhookSink) Submit(ctx context.Context, order *Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order webhook returned status %d", resp.StatusCode)
	}
	return nil
}
