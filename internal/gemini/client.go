// Package gemini implements the text-generation client for the Google
// Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Default sampling parameters.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.8
	DefaultTopK        = 40
)

// ErrMissingAPIKey is returned on requests made without a configured key.
// A missing key is a request failure, never a crash.
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// Options configures the client. Zero values fall back to the defaults.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	TopP        float64
	TopK        int
	Timeout     time.Duration
}

// Client calls the generateContent endpoint. Safe for sequential use; the
// caller is responsible for limiting requests to one at a time.
type Client struct {
	opts       Options
	httpClient *http.Client
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.TopP == 0 {
		opts.TopP = DefaultTopP
	}
	if opts.TopK == 0 {
		opts.TopK = DefaultTopK
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the prompt and returns the generated text. Authentication,
// quota and transport problems all surface as errors for the caller to
// collapse into a displayable message.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.opts.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature: c.opts.Temperature,
			TopP:        c.opts.TopP,
			TopK:        c.opts.TopK,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.opts.BaseURL, c.opts.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.opts.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decoding gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("gemini API error %d (%s): %s", out.Error.Code, out.Error.Status, out.Error.Message)
		}
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		break // only the first candidate is used
	}
	return sb.String(), nil
}
