package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"vanity-notify/internal/domain/model"
	"vanity-notify/internal/domain/ports"
)

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier. A nil client means http.DefaultClient.
func NewWebhook(webhookURL string, client *http.Client) *Webhook {
	if client == nil {
		client = http.DefaultClient
	}
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: client,
	}
}

// Send posts the notification to Discord in a single attempt.
// Any status other than 204 yields a *model.StatusError.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	body, err := json.Marshal(BuildPayload(notification))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return &model.StatusError{Code: resp.StatusCode}
	}

	return nil
}
