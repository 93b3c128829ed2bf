package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/SurajNaik1502/TPC/pkg/logger"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash-exp:generateContent"

// Relay-boundary failures. An *UpstreamError means the API answered with
// a non-2xx status; the other errors mean the call could not be made or
// the body did not carry a candidate.
var (
	ErrMissingAPIKey   = errors.New("GEMINI_API_KEY is not configured")
	ErrInvalidResponse = errors.New("invalid response from Gemini API")
)

// UpstreamError is a non-2xx answer from the generative endpoint
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Gemini API error: %d", e.StatusCode)
}

// InlineData carries document bytes sent alongside a prompt
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Part is a single prompt part: text or an inline document
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// Content groups the parts of one prompt turn
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig holds the sampling parameters for a generation call
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client calls the Gemini generateContent REST endpoint
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
	log      logger.Logger
}

// NewClientFromEnv creates a client with the key from GEMINI_API_KEY.
// A missing key is not fatal here: each call fails with ErrMissingAPIKey
// so the relay endpoints can degrade per request instead of refusing to
// start.
func NewClientFromEnv(log logger.Logger) *Client {
	return NewClient(os.Getenv("GEMINI_API_KEY"), defaultEndpoint, log)
}

// NewClient creates a client against a specific endpoint
func NewClient(apiKey, endpoint string, log logger.Logger) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
		log:      log,
	}
}

// Generate performs a single generateContent call and returns the text of
// the first candidate. There is no retry: one attempt per user action.
func (c *Client) Generate(ctx context.Context, contents []Content, cfg GenerationConfig) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents:         contents,
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("error encoding Gemini request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading Gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("Gemini API returned an error", "status", resp.StatusCode, "body", string(respBody))
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("error decoding Gemini response: %w", err)
	}

	if len(parsed.Candidates) == 0 || parsed.Candidates[0].Content == nil || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrInvalidResponse
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
