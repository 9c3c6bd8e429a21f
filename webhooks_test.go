package voltage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWebhook(t *testing.T) {
	var sent CreateWebhookRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/organizations/org1/environments/env1/webhooks", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		writeJSON(t, w, http.StatusOK, WebhookSecret{ID: sent.ID, Secret: "whsec_abc123"})
	}))

	secret, err := client.CreateWebhook(context.Background(), "org1", "env1", CreateWebhookRequest{
		URL:    "https://example.com/hooks/voltage",
		Name:   "payments",
		Events: []string{"send.succeeded", "receive.succeeded"},
	})

	require.NoError(t, err)
	_, err = uuid.Parse(sent.ID)
	assert.NoError(t, err, "generated webhook id must be a valid UUID")
	assert.Equal(t, sent.ID, secret.ID)
	assert.Equal(t, "whsec_abc123", secret.Secret)
}

func TestGetWebhook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/org1/environments/env1/webhooks/hook1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, Webhook{
			ID:     "hook1",
			URL:    "https://example.com/hooks/voltage",
			Status: WebhookActive,
			Events: []string{"send.succeeded"},
		})
	}))

	webhook, err := client.GetWebhook(context.Background(), "org1", "env1", "hook1")
	require.NoError(t, err)
	assert.Equal(t, WebhookActive, webhook.Status)
	assert.Equal(t, []string{"send.succeeded"}, webhook.Events)
}

func TestListWebhooks(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/org1/environments/env1/webhooks", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []Webhook{{ID: "hook1"}, {ID: "hook2"}})
	}))

	webhooks, err := client.ListWebhooks(context.Background(), "org1", "env1")
	require.NoError(t, err)
	assert.Len(t, webhooks, 2)
}

func TestUpdateWebhook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/organizations/org1/environments/env1/webhooks/hook1", r.URL.Path)
		var req UpdateWebhookRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "renamed", req.Name)
		w.WriteHeader(http.StatusAccepted)
	}))

	err := client.UpdateWebhook(context.Background(), "org1", "env1", "hook1", UpdateWebhookRequest{Name: "renamed"})
	assert.NoError(t, err)
}

func TestWebhookLifecycle(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client) error
		path string
	}{
		{
			name: "delete",
			call: func(c *Client) error {
				return c.DeleteWebhook(context.Background(), "org1", "env1", "hook1")
			},
			path: "/organizations/org1/environments/env1/webhooks/hook1",
		},
		{
			name: "start",
			call: func(c *Client) error {
				return c.StartWebhook(context.Background(), "org1", "env1", "hook1")
			},
			path: "/organizations/org1/environments/env1/webhooks/hook1/start",
		},
		{
			name: "stop",
			call: func(c *Client) error {
				return c.StopWebhook(context.Background(), "org1", "env1", "hook1")
			},
			path: "/organizations/org1/environments/env1/webhooks/hook1/stop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				w.WriteHeader(http.StatusAccepted)
			}))
			assert.NoError(t, tt.call(client))
		})
	}
}

func TestGenerateWebhookKey(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/organizations/org1/environments/env1/webhooks/hook1/keys", r.URL.Path)
		writeJSON(t, w, http.StatusOK, WebhookSecret{ID: "hook1", Secret: "whsec_rotated"})
	}))

	secret, err := client.GenerateWebhookKey(context.Background(), "org1", "env1", "hook1")
	require.NoError(t, err)
	assert.Equal(t, "whsec_rotated", secret.Secret)
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_test123"
	body := []byte(`{"event":"receive.succeeded","payment_id":"pay1"}`)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, VerifyWebhookSignature(secret, body, valid))
	})

	t.Run("tampered body", func(t *testing.T) {
		assert.Error(t, VerifyWebhookSignature(secret, []byte(`{"event":"forged"}`), valid))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.Error(t, VerifyWebhookSignature("whsec_other", body, valid))
	})

	t.Run("missing secret", func(t *testing.T) {
		assert.Error(t, VerifyWebhookSignature("", body, valid))
	})
}
