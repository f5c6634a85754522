// Package search runs a query through the answer generator and records the
// exchange.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/internal/metrics"
	"github.com/seekrhq/seekr/plugin/ai"
	"github.com/seekrhq/seekr/store"
)

type Service struct {
	Store     *store.Store
	Generator ai.Generator
}

func NewService(st *store.Store, generator ai.Generator) *Service {
	return &Service{Store: st, Generator: generator}
}

// Result is the response to a search request.
type Result struct {
	SearchID string                `json:"searchId"`
	Query    string                `json:"query"`
	Response string                `json:"response"`
	Sources  []*store.SearchSource `json:"sources"`
	Category string                `json:"category,omitempty"`
}

// Run generates an answer for the query, persists the exchange and returns
// it. Generation failures degrade to an apology so the search is still
// recorded and the client always gets a response.
func (s *Service) Run(ctx context.Context, query string, category string, userID string) (*Result, error) {
	start := time.Now()
	answer, err := s.Generator.GenerateAnswer(ctx, query, category)
	metrics.RecordGeneration(time.Since(start).Seconds())
	if err != nil {
		slog.Warn("search generation failed", slog.String("query", query), slog.String("error", err.Error()))
		answer = &ai.Answer{}
	}
	if answer.Content == "" {
		answer.Content = fmt.Sprintf("I apologize, but I wasn't able to generate a response for %q. This might be due to configuration issues with the AI services. Please check the server logs or try again later.", query)
	}

	sources := make([]*store.SearchSource, 0, len(answer.Sources))
	for _, src := range answer.Sources {
		sources = append(sources, &store.SearchSource{Title: src.Title, URL: src.URL, Snippet: src.Snippet})
	}

	search, err := s.Store.CreateSearch(ctx, &store.Search{
		UserID:   userID,
		Query:    query,
		Response: answer.Content,
		Category: category,
		Sources:  sources,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search")
	}
	metrics.RecordSearch(category)

	return &Result{
		SearchID: search.ID,
		Query:    search.Query,
		Response: search.Response,
		Sources:  search.Sources,
		Category: search.Category,
	}, nil
}

// Suggest completes a partial query. Failures degrade to no suggestions.
func (s *Service) Suggest(ctx context.Context, partial string) []string {
	suggestions, err := s.Generator.GenerateSuggestions(ctx, partial)
	if err != nil {
		slog.Warn("suggestion generation failed", slog.String("error", err.Error()))
		return []string{}
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestions
}
