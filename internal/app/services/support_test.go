package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/repositories"
	"github.com/lightoncampus/backend/internal/pkg/assist"
	"github.com/lightoncampus/backend/internal/seed"
)

// stubGenerator stands in for the Gemini client and counts attempts.
type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

// newSeededRepos returns repositories populated with the startup records.
func newSeededRepos() *repositories.Repositories {
	repos := repositories.NewRepositories()
	seed.Load(repos, zerolog.Nop())
	return repos
}

// newStubAssist builds an assist client around a stub generator. An empty
// key exercises the no-credential fast path.
func newStubAssist(key string, gen assist.TextGenerator) *assist.Client {
	return assist.NewClientWithKey(key, gen, zerolog.Nop())
}
