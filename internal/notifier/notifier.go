package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Notifier delivers a message to a recipient. Implementations must be
// time-bounded; the settlement engine never waits on delivery while holding
// a lock.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// messagePayload is the JSON body posted to the delivery endpoint.
type messagePayload struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// WebhookNotifier posts notifications as JSON to an external delivery
// endpoint (a mail relay in production). The HTTP client carries its own
// timeout so a hung endpoint cannot stall a settlement response.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
}

// NewWebhookNotifier creates a notifier targeting the given endpoint.
func NewWebhookNotifier(endpoint string, client *http.Client) *WebhookNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookNotifier{endpoint: endpoint, client: client}
}

// Notify posts the message and treats any non-2xx response as a failure.
func (n *WebhookNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(messagePayload{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("notifier: failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notifier: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notifier: delivery to %s failed: %w", n.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notifier: delivery endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
