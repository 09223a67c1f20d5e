package assist

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

// Configuration constants for the Gemini API.
const (
	// DefaultGeminiBaseURL is the base URL for the generative language API.
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultGeminiModel is the model used when none is configured.
	DefaultGeminiModel = "gemini-3-flash-preview"

	// DefaultTimeout bounds the single request attempt.
	DefaultTimeout = 60 * time.Second

	// maxResponseSize caps the response body read.
	maxResponseSize = 10 * 1024 * 1024
)

// ErrEmptyCandidate indicates the service answered without any text.
var ErrEmptyCandidate = errors.New("gemini response contained no candidates")

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the subset of the generateContent response we read.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiGenerator talks to the Google generative language REST API. One
// request per GenerateText call; the http.Client timeout is the only
// deadline beyond the caller's context.
type GeminiGenerator struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGeminiGenerator creates a generator for the given credential and model.
// An empty model selects DefaultGeminiModel.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiGenerator{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultGeminiBaseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithBaseURL sets a custom base URL for the API.
func (g *GeminiGenerator) WithBaseURL(url string) *GeminiGenerator {
	g.baseURL = strings.TrimSuffix(url, "/")
	return g
}

// WithTimeout sets the request timeout.
func (g *GeminiGenerator) WithTimeout(timeout time.Duration) *GeminiGenerator {
	g.httpClient.Timeout = timeout
	return g
}

// GenerateText sends the prompt to the generateContent endpoint and returns
// the concatenated text of the first candidate.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("gemini error (HTTP %d) [%s]: %s", resp.StatusCode, parsed.Error.Status, parsed.Error.Message)
		}
		return "", fmt.Errorf("gemini error (HTTP %d)", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 {
		return "", ErrEmptyCandidate
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
