package voltage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
)

type CreateWebhookRequest struct {
	ID     string   `json:"id"`
	URL    string   `json:"url"`
	Name   string   `json:"name"`
	Events []string `json:"events"`
}

type UpdateWebhookRequest struct {
	URL    string   `json:"url,omitempty"`
	Name   string   `json:"name,omitempty"`
	Events []string `json:"events,omitempty"`
}

// CreateWebhook registers a delivery endpoint and returns its signing
// secret. The secret is only ever returned here and from GenerateWebhookKey;
// store it, it cannot be read back. A missing ID is filled with a generated
// UUID before sending.
func (c *Client) CreateWebhook(ctx context.Context, organizationID, environmentID string, req CreateWebhookRequest) (*WebhookSecret, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "url", req.URL); err != nil {
		return nil, err
	}
	if req.ID == "" {
		req.ID = c.newID()
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks", organizationID, environmentID)
	var secret WebhookSecret
	if err := c.do(ctx, http.MethodPost, path, req, &secret); err != nil {
		return nil, err
	}
	return &secret, nil
}

func (c *Client) GetWebhook(ctx context.Context, organizationID, environmentID, webhookID string) (*Webhook, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "webhook_id", webhookID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks/%s", organizationID, environmentID, webhookID)
	var webhook Webhook
	if err := c.do(ctx, http.MethodGet, path, nil, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

func (c *Client) ListWebhooks(ctx context.Context, organizationID, environmentID string) ([]Webhook, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks", organizationID, environmentID)
	var webhooks []Webhook
	if err := c.do(ctx, http.MethodGet, path, nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// UpdateWebhook changes a webhook's URL, name, or event subscriptions. The
// service acknowledges without a body; re-fetch to observe the result.
func (c *Client) UpdateWebhook(ctx context.Context, organizationID, environmentID, webhookID string, req UpdateWebhookRequest) error {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "webhook_id", webhookID); err != nil {
		return err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks/%s", organizationID, environmentID, webhookID)
	return c.do(ctx, http.MethodPatch, path, req, nil)
}

func (c *Client) DeleteWebhook(ctx context.Context, organizationID, environmentID, webhookID string) error {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "webhook_id", webhookID); err != nil {
		return err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks/%s", organizationID, environmentID, webhookID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// StartWebhook resumes deliveries to a stopped webhook.
func (c *Client) StartWebhook(ctx context.Context, organizationID, environmentID, webhookID string) error {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "webhook_id", webhookID); err != nil {
		return err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks/%s/start", organizationID, environmentID, webhookID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// StopWebhook pauses deliveries without deleting the webhook.
func (c *Client) StopWebhook(ctx context.Context, organizationID, environmentID, webhookID string) error {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "webhook_id", webhookID); err != nil {
		return err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks/%s/stop", organizationID, environmentID, webhookID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// GenerateWebhookKey rotates the webhook's signing secret and returns the
// new one. The previous secret stops validating deliveries.
func (c *Client) GenerateWebhookKey(ctx context.Context, organizationID, environmentID, webhookID string) (*WebhookSecret, error) {
	if err := requireIDs("organization_id", organizationID, "environment_id", environmentID, "webhook_id", webhookID); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/organizations/%s/environments/%s/webhooks/%s/keys", organizationID, environmentID, webhookID)
	var secret WebhookSecret
	if err := c.do(ctx, http.MethodPost, path, nil, &secret); err != nil {
		return nil, err
	}
	return &secret, nil
}

// VerifyWebhookSignature checks the HMAC-SHA256 signature on a webhook
// delivery against the raw request body. signature is the hex-encoded digest
// from the delivery's signature header.
func VerifyWebhookSignature(secret string, body []byte, signature string) error {
	if secret == "" {
		return fmt.Errorf("missing webhook secret")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
