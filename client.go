package voltage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://voltageapi.com/v1"
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings for a Client. Exactly one of APIKey and
// BearerToken must be set.
type Config struct {
	BaseURL     string
	APIKey      string
	BearerToken string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

type Client struct {
	baseURL     string
	apiKey      string
	bearerToken string
	httpClient  *http.Client

	newID func() string
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" && cfg.BearerToken == "" {
		return nil, fmt.Errorf("either an API key or a bearer token is required")
	}
	if cfg.APIKey != "" && cfg.BearerToken != "" {
		return nil, fmt.Errorf("API key and bearer token are mutually exclusive")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:     baseURL,
		apiKey:      cfg.APIKey,
		bearerToken: cfg.BearerToken,
		httpClient:  httpClient,
		newID:       uuid.NewString,
	}, nil
}

// do performs one API request and decodes a 2xx JSON response into out.
// GET requests never send a body, and empty 202/204 responses are accepted
// without decoding. There are no retries at this layer.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil && method != http.MethodGet {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &TransportError{Timeout: true, Status: http.StatusRequestTimeout, Err: err}
		}
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ParseError{Status: resp.StatusCode, Err: err}
		}
	}
	return nil
}

func newAPIError(status int, body []byte) error {
	apiErr := &APIError{
		Status:  status,
		Message: fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status)),
	}
	if len(body) > 0 {
		var detail map[string]any
		if err := json.Unmarshal(body, &detail); err != nil {
			return &ParseError{Status: status, Err: err}
		}
		apiErr.Detail = detail
		if msg, ok := detail["message"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// requireIDs checks alternating name/value pairs and reports every empty
// value in one error.
func requireIDs(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func encodeQuery(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
