package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"screenline/models"
)

// Sink delivers a captured lead to the downstream automation endpoint.
type Sink interface {
	Submit(ctx context.Context, lead models.Lead) error
}

// WebhookSink posts lead fields as JSON to an automation webhook URL.
type WebhookSink struct {
	webhookURL string
	httpClient *http.Client
}

func NewWebhookSink(webhookURL string, timeout time.Duration) *WebhookSink {
	return &WebhookSink{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *WebhookSink) Submit(ctx context.Context, lead models.Lead) error {
	jsonData, err := json.Marshal(lead.Fields())
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("automation webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
