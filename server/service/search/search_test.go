package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/plugin/ai"
	"github.com/seekrhq/seekr/store"
	"github.com/seekrhq/seekr/store/db"
)

type stubGenerator struct {
	answer      *ai.Answer
	suggestions []string
	err         error
}

func (g *stubGenerator) GenerateAnswer(ctx context.Context, query string, category string) (*ai.Answer, error) {
	return g.answer, g.err
}

func (g *stubGenerator) GenerateChatAnswer(ctx context.Context, history []ai.Message, message string) (*ai.Answer, error) {
	return g.answer, g.err
}

func (g *stubGenerator) GenerateSuggestions(ctx context.Context, partial string) ([]string, error) {
	return g.suggestions, g.err
}

func newTestingService(t *testing.T, generator ai.Generator) *Service {
	t.Helper()
	testingProfile := &profile.Profile{Mode: "dev", Driver: "memory"}
	dbDriver, err := db.NewDBDriver(testingProfile)
	require.NoError(t, err)
	st := store.New(dbDriver, testingProfile)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st, generator)
}

func TestRunPersistsSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{
		Content: "An answer.",
		Sources: []ai.Source{{Title: "Ref", URL: "https://example.com", Snippet: "sn"}},
	}})

	result, err := svc.Run(ctx, "some query", "finance", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, result.SearchID)
	require.Equal(t, "some query", result.Query)
	require.Equal(t, "An answer.", result.Response)
	require.Equal(t, "finance", result.Category)
	require.Len(t, result.Sources, 1)

	saved, err := svc.Store.GetSearch(ctx, &store.FindSearch{ID: &result.SearchID})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, "An answer.", saved.Response)
	require.Equal(t, "user-1", saved.UserID)
	require.Len(t, saved.Sources, 1)
	require.Equal(t, "https://example.com", saved.Sources[0].URL)
}

func TestRunFallbackOnEmptyAnswer(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{}})

	result, err := svc.Run(ctx, "mystery", "", "")
	require.NoError(t, err)
	require.Contains(t, result.Response, `I apologize, but I wasn't able to generate a response for "mystery"`)

	// The degraded exchange is still recorded.
	saved, err := svc.Store.GetSearch(ctx, &store.FindSearch{ID: &result.SearchID})
	require.NoError(t, err)
	require.NotNil(t, saved)
}

func TestRunFallbackOnGeneratorError(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{err: context.DeadlineExceeded})

	result, err := svc.Run(ctx, "flaky", "", "")
	require.NoError(t, err)
	require.Contains(t, result.Response, "I apologize")
	require.Empty(t, result.Sources)
}

func TestSuggestDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	svc := newTestingService(t, &stubGenerator{suggestions: []string{"go tutorials", "go generics"}})
	require.Equal(t, []string{"go tutorials", "go generics"}, svc.Suggest(ctx, "go"))

	svc = newTestingService(t, &stubGenerator{err: context.DeadlineExceeded})
	require.Empty(t, svc.Suggest(ctx, "go"))

	svc = newTestingService(t, &stubGenerator{})
	require.NotNil(t, svc.Suggest(ctx, "go"))
}
