package assist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator records every prompt it is asked to generate from.
type stubGenerator struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestGenerateWithoutCredentialMakesNoCall(t *testing.T) {
	stub := &stubGenerator{text: "never returned"}
	client := NewClientWithKey("", stub, zerolog.Nop())

	assert.False(t, client.Configured())
	assert.Equal(t,
		"API Key missing. Please configure your Google Gemini API Key.",
		client.Generate(context.Background(), PromptCourseOutline, Params{Topic: "Prayer"}))
	assert.Equal(t,
		"I am unable to connect to the server right now. Please pray and try again later.",
		client.Generate(context.Background(), PromptCounsel, Params{Message: "I feel lost"}))
	assert.Equal(t,
		"Please set API Key.",
		client.Generate(context.Background(), PromptPostDraft, Params{Topic: "Gratitude"}))

	assert.Zero(t, stub.calls)
}

func TestGenerateFailureFallback(t *testing.T) {
	stub := &stubGenerator{err: errors.New("upstream unavailable")}
	client := NewClientWithKey("test-key", stub, zerolog.Nop())

	assert.Equal(t,
		"Error communicating with AI service. Please try again later.",
		client.Generate(context.Background(), PromptCourseOutline, Params{Topic: "Prayer", Category: "Bible Study"}))
	assert.Equal(t,
		"Peace be with you. I am having trouble connecting right now.",
		client.Generate(context.Background(), PromptCounsel, Params{Message: "I feel lost"}))
	assert.Equal(t, "",
		client.Generate(context.Background(), PromptPostDraft, Params{Topic: "Gratitude", Role: "member"}))

	// One attempt per call, never more
	assert.Equal(t, 3, stub.calls)
}

func TestGenerateEmptyResponseFallback(t *testing.T) {
	stub := &stubGenerator{text: "   \n"}
	client := NewClientWithKey("test-key", stub, zerolog.Nop())

	assert.Equal(t,
		"Failed to generate course content.",
		client.Generate(context.Background(), PromptCourseOutline, Params{Topic: "Prayer"}))
	assert.Equal(t,
		"I am listening, but I cannot find the words right now.",
		client.Generate(context.Background(), PromptCounsel, Params{Message: "hi"}))
}

func TestGeneratePassesRenderedPromptThrough(t *testing.T) {
	stub := &stubGenerator{text: "Week 1: Beginnings"}
	client := NewClientWithKey("test-key", stub, zerolog.Nop())

	got := client.Generate(context.Background(), PromptCourseOutline, Params{
		Topic:    "Faith and Finances",
		Category: "Finance",
	})
	assert.Equal(t, "Week 1: Beginnings", got)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Topic: Faith and Finances")
	assert.Contains(t, stub.prompts[0], "Category: Finance")

	client.Generate(context.Background(), PromptCounsel, Params{Message: "I am anxious about exams"})
	require.Len(t, stub.prompts, 2)
	assert.Contains(t, stub.prompts[1], `"I am anxious about exams"`)

	client.Generate(context.Background(), PromptPostDraft, Params{Topic: "Thanksgiving", Role: "pastor"})
	require.Len(t, stub.prompts, 3)
	assert.Contains(t, stub.prompts[2], "User Role: pastor")
	assert.True(t, strings.Contains(stub.prompts[2], "Topic: Thanksgiving"))
}

func TestResolveAPIKeyPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "primary")
	t.Setenv("API_KEY", "secondary")
	assert.Equal(t, "primary", ResolveAPIKey())

	t.Setenv("GEMINI_API_KEY", "")
	assert.Equal(t, "secondary", ResolveAPIKey())

	t.Setenv("API_KEY", "  ")
	assert.Equal(t, "", ResolveAPIKey())
}
