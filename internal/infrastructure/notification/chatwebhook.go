package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ChatWebhookClient posts plain text messages to a chat webhook
// (Slack-compatible payload shape).
type ChatWebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

func NewChatWebhookClient(webhookURL string) *ChatWebhookClient {
	return &ChatWebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *ChatWebhookClient) Post(text string) error {
	if c.webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	resp, err := c.httpClient.Post(c.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
