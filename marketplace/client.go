// Package marketplace is the HTTP client for the upstream marketplace
// API. Every call is a single fetch: no retries, no caching, and a
// failed or partial response is never applied.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// envelope is the upstream response wrapper: { success, message, data }.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a failed upstream call: transport-level (non-2xx) or a
// success:false envelope.
type APIError struct {
	Status  int
	Path    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketplace: %s: %s (status %d)", e.Path, e.Message, e.Status)
	}
	return fmt.Sprintf("marketplace: %s: status %d", e.Path, e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given upstream base URL with a
// default request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// do performs one request against the upstream. token, when non-empty,
// is forwarded as the Authorization header (the caller's own bearer
// token). out, when non-nil, receives the envelope's data field.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marketplace: encode %s request: %w", path, err)
		}
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("marketplace: build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("marketplace: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &APIError{Status: resp.StatusCode, Path: path}
		}
		return fmt.Errorf("marketplace: decode %s response: %w", path, decodeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		return &APIError{Status: resp.StatusCode, Path: path, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("marketplace: decode %s data: %w", path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}
