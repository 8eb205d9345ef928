// internal/pkg/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/your-org/market-store-gateway/internal/config"
)

// Envelope is the response shape the market API wraps every payload in
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorBody      `json:"error,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// ErrorBody carries the upstream error payload
type ErrorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Meta carries pagination information for list responses
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// APIError is the translated form of an upstream failure
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the market API. All authoritative business logic lives
// there; this client only moves requests and translates failures into
// user-facing messages.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient creates a market API client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Upstream.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
	}
}

// WithToken returns a client that attaches the given bearer token to every
// request. The receiver is not modified.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = strings.TrimPrefix(token, "Bearer ")
	return &clone
}

// Get performs a GET request and decodes the enveloped payload into out
func (c *Client) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	_, err := c.do(ctx, http.MethodGet, path, params, nil, out)
	return err
}

// GetPaginated performs a GET request for a paginated collection and
// returns the pagination meta alongside the decoded payload.
func (c *Client) GetPaginated(ctx context.Context, path string, page, limit int, out interface{}) (*Meta, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	meta, err := c.do(ctx, http.MethodGet, path, params, nil, out)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		meta = &Meta{Page: page, Limit: limit}
	}
	return meta, nil
}

// Post performs a POST request and decodes the enveloped payload into out
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

// Patch performs a PATCH request and decodes the enveloped payload into out
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, body, out)
	return err
}

// Health probes upstream reachability
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("market API unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("market API unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) (*Meta, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: "Network error. Please check your connection."}
	}
	defer resp.Body.Close()

	var envelope Envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode >= 400 {
		message := statusMessage(resp.StatusCode)
		if decodeErr == nil && envelope.Error != nil && envelope.Error.Message != "" {
			message = envelope.Error.Message
		}
		return nil, &APIError{Message: message, StatusCode: resp.StatusCode}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if !envelope.Success {
		message := "Request failed"
		if envelope.Error != nil && envelope.Error.Message != "" {
			message = envelope.Error.Message
		}
		return nil, &APIError{Message: message, StatusCode: resp.StatusCode}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return envelope.Meta, nil
}

// statusMessage maps HTTP status codes to user-facing messages
func statusMessage(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "Invalid request data"
	case http.StatusUnauthorized:
		return "Authentication required. Please log in."
	case http.StatusForbidden:
		return "You do not have permission to access this resource"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusConflict:
		return "This resource already exists"
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable"
	default:
		if statusCode >= 500 {
			return "Server error. Please try again later."
		}
		return "Network error. Please check your connection."
	}
}
