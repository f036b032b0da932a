package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Decoding parameters sent with every request.
const (
	defaultTemperature     = 0.7
	defaultTopK            = 40
	defaultTopP            = 0.95
	defaultMaxOutputTokens = 1024
	jsonMIMEType           = "application/json"
)

// Part is one fragment of a content message.
type Part struct {
	Text string `json:"text"`
}

// Content is a single message exchanged with the model.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig controls decoding on the Gemini side.
type GenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopK             int     `json:"topK"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType"`
}

// GenerateContentRequest is the body of a generateContent call.
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content Content `json:"content"`
}

// GenerateContentResponse is the subset of the generateContent reply we read.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Text concatenates the text parts of the first candidate. It returns an
// empty string when there is no candidate.
func (r *GenerateContentResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// UpstreamError is returned when Gemini answers with a non-2xx status.
// Body holds the raw response body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// GeminiClient calls the generateContent REST endpoint.
type GeminiClient struct {
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewGeminiClient creates a client for apiURL (for example
// https://generativelanguage.googleapis.com/v1beta) and model. A zero timeout
// leaves the transport defaults in place.
func NewGeminiClient(apiURL, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiURL:     strings.TrimRight(apiURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewGenerateContentRequest builds the request body for a single-turn prompt.
func NewGenerateContentRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: GenerationConfig{
			Temperature:      defaultTemperature,
			TopK:             defaultTopK,
			TopP:             defaultTopP,
			MaxOutputTokens:  defaultMaxOutputTokens,
			ResponseMIMEType: jsonMIMEType,
		},
	}
}

func (c *GeminiClient) endpoint(apiKey string) string {
	q := url.Values{}
	q.Set("key", apiKey)
	return fmt.Sprintf("%s/models/%s:generateContent?%s", c.apiURL, url.PathEscape(c.model), q.Encode())
}

// GenerateContent sends prompt to the model and returns the generated text.
// A non-2xx reply yields *UpstreamError.
func (c *GeminiClient) GenerateContent(ctx context.Context, apiKey, prompt string) (string, error) {
	jsonData, err := json.Marshal(NewGenerateContentRequest(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		// The URL carries the key; never let it reach an error message.
		return "", fmt.Errorf("failed to send request: %w", redactURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	upstreamDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Text(), nil
}

func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s %q: %w", urlErr.Op, redactKey(urlErr.URL), urlErr.Err)
	}
	return err
}

func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
