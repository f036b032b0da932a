// Package client calls the recipe generation endpoint over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pageza/dapur-ai/backend/internal/locale"
)

const generatePath = "/api/generate"

const defaultServerError = "Server error: %d"

// StatusError is returned for any non-2xx reply. Its message is the
// response body, or the locale's server error text ("Server error: <status>")
// when the body is empty.
type StatusError struct {
	StatusCode int
	Body       string

	format string
}

func (e *StatusError) Error() string {
	if msg := strings.TrimSpace(e.Body); msg != "" {
		return msg
	}
	format := e.format
	if format == "" {
		format = defaultServerError
	}
	return fmt.Sprintf(format, e.StatusCode)
}

// Client talks to a running server.
type Client struct {
	baseURL    string
	locale     locale.Locale
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets a timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client for the server at baseURL that asks for answers in loc.
func New(baseURL string, loc locale.Locale, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		locale:     loc,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Ingredients string `json:"ingredients"`
}

// Generate posts ingredients and returns the raw JSON body of a successful
// reply. Decoding is left to the caller so that it can apply its own
// defaults.
func (c *Client) Generate(ctx context.Context, ingredients string) ([]byte, error) {
	payload, err := json.Marshal(generateRequest{Ingredients: ingredients})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", string(c.locale))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			format:     locale.For(c.locale).ServerError,
		}
	}

	return body, nil
}
