// Package assist wraps the generative-text service used to draft posts,
// generate course outlines, and answer counselor-chat queries.
//
// The client never returns an error: a missing credential short-circuits to
// a fixed per-kind fallback string with no network attempt, and a failed
// call is swallowed and replaced by a second, distinct per-kind fallback.
// Exactly one attempt is made per call; there is no retry or backoff.
package assist

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Credential environment variables, checked in priority order.
var apiKeyEnvVars = []string{"GEMINI_API_KEY", "API_KEY"}

// TextGenerator produces text from a single prompt string. The production
// implementation is GeminiGenerator; tests substitute a stub to count
// attempts.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Client builds one of the fixed prompt templates and forwards it to the
// underlying generator.
type Client struct {
	apiKey    string
	generator TextGenerator
	logger    zerolog.Logger
}

// NewClient creates an assist client. The credential is resolved from the
// environment once, at construction.
func NewClient(generator TextGenerator, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:    ResolveAPIKey(),
		generator: generator,
		logger:    logger,
	}
}

// NewClientWithKey creates an assist client with an explicit credential.
func NewClientWithKey(apiKey string, generator TextGenerator, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:    strings.TrimSpace(apiKey),
		generator: generator,
		logger:    logger,
	}
}

// ResolveAPIKey returns the first configured credential, or empty.
func ResolveAPIKey() string {
	for _, name := range apiKeyEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// Configured reports whether a credential is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Generate renders the template for kind with params and returns the
// generated text, or the applicable fallback string. It never fails.
func (c *Client) Generate(ctx context.Context, kind PromptKind, params Params) string {
	if c.apiKey == "" {
		// Fast-fail path, not an error: no network attempt is made.
		return missingKeyFallback[kind]
	}

	prompt, err := renderPrompt(kind, params)
	if err != nil {
		c.logger.Error().Err(err).Str("kind", string(kind)).Msg("Failed to render prompt template")
		return failureFallback[kind]
	}

	text, err := c.generator.GenerateText(ctx, prompt)
	if err != nil {
		c.logger.Error().Err(err).Str("kind", string(kind)).Msg("AI service call failed")
		return failureFallback[kind]
	}

	if strings.TrimSpace(text) == "" {
		return emptyFallback[kind]
	}
	return text
}

func renderPrompt(kind PromptKind, params Params) (string, error) {
	tmpl, ok := promptTemplates[kind]
	if !ok {
		return "", errUnknownKind(kind)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type errUnknownKind PromptKind

func (e errUnknownKind) Error() string {
	return "unknown prompt kind: " + string(e)
}
