// Package apiclient calls the hackhub HTTP API on behalf of a signed-in organizer.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hackhub/internal/domain"
)

const maxResponseBytes = 4 << 20

// APIError is a non-2xx response from the API. Message is the server's error.message.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage is the message the server reported, suitable for showing to the user.
func (e *APIError) ServerMessage() string { return e.Message }

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

// TokenSource returns the bearer token for the current user.
type TokenSource func(ctx context.Context) (string, error)

// Client is a small JSON client for the hackhub API.
type Client struct {
	baseURL string
	client  *http.Client
	token   TokenSource
}

// New returns a Client for the API rooted at baseURL (e.g. "https://api.hackhub.dev").
func New(baseURL string, client *http.Client, token TokenSource) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), client: client, token: token}
}

// CreateEvent posts the normalized event to POST /api/events. idempotencyKey is sent as the
// Idempotency-Key header so a retried submission cannot create a second event.
func (c *Client) CreateEvent(ctx context.Context, idempotencyKey string, input domain.EventInput) (*domain.Event, error) {
	headers := http.Header{}
	if idempotencyKey != "" {
		headers.Set("Idempotency-Key", idempotencyKey)
	}
	var event domain.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", headers, input, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetEvent fetches one event aggregate.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+eventID, nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) do(ctx context.Context, method, path string, headers http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Fields = env.Error.Fields
		}
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
