package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seekrhq/seekr/server/auth"
	"github.com/seekrhq/seekr/store"
)

type searchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

type searchResponse struct {
	ID        string                `json:"id"`
	Query     string                `json:"query"`
	Response  string                `json:"response"`
	Category  string                `json:"category,omitempty"`
	Sources   []*store.SearchSource `json:"sources"`
	CreatedAt int64                 `json:"createdAt"`
}

func (s *APIV1Service) RunSearch(c echo.Context) error {
	ctx := c.Request().Context()
	req := &searchRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	result, err := s.SearchService.Run(ctx, req.Query, req.Category, auth.UserIDFromContext(c))
	if err != nil {
		slog.Error("search failed", slog.String("query", req.Query), slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, result)
}

func (s *APIV1Service) GetSearchSuggestions(c echo.Context) error {
	ctx := c.Request().Context()
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusOK, map[string][]string{"suggestions": {}})
	}
	return c.JSON(http.StatusOK, map[string][]string{"suggestions": s.SearchService.Suggest(ctx, q)})
}

func (s *APIV1Service) GetSearch(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	search, err := s.Store.GetSearch(ctx, &store.FindSearch{ID: &id})
	if err != nil {
		slog.Error("failed to get search", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get search")
	}
	if search == nil {
		return echo.NewHTTPError(http.StatusNotFound, "search not found")
	}
	return c.JSON(http.StatusOK, searchResponse{
		ID:        search.ID,
		Query:     search.Query,
		Response:  search.Response,
		Category:  search.Category,
		Sources:   search.Sources,
		CreatedAt: search.CreatedTs,
	})
}
