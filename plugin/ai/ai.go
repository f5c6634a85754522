package ai

import (
	"context"

	"github.com/seekrhq/seekr/internal/profile"
)

// Source is a cited reference attached to a generated answer.
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Answer is the output of a generation call.
type Answer struct {
	Content string
	Sources []Source
}

// Message is one turn of chat history passed to the generator.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Generator produces answers for search queries and chat turns. An empty
// Content with a nil error means the provider had nothing to say; callers
// substitute their own fallback copy.
type Generator interface {
	// GenerateAnswer answers a standalone search query. Category may be empty.
	GenerateAnswer(ctx context.Context, query string, category string) (*Answer, error)

	// GenerateChatAnswer answers the latest message given prior conversation turns.
	GenerateChatAnswer(ctx context.Context, history []Message, message string) (*Answer, error)

	// GenerateSuggestions completes a partial query into up to five suggestions.
	GenerateSuggestions(ctx context.Context, partial string) ([]string, error)
}

// NewGenerator picks the generator implementation for the given profile.
func NewGenerator(p *profile.Profile) Generator {
	if p.IsAIEnabled() {
		return newOpenAIGenerator(p)
	}
	return &disabledGenerator{}
}

// disabledGenerator is used when no provider is configured. It returns empty
// answers so the services fall back to their apology copy instead of failing.
type disabledGenerator struct{}

func (*disabledGenerator) GenerateAnswer(ctx context.Context, query string, category string) (*Answer, error) {
	return &Answer{}, nil
}

func (*disabledGenerator) GenerateChatAnswer(ctx context.Context, history []Message, message string) (*Answer, error) {
	return &Answer{}, nil
}

func (*disabledGenerator) GenerateSuggestions(ctx context.Context, partial string) ([]string, error) {
	return []string{}, nil
}
