package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seekrhq/seekr/internal/metrics"
	"github.com/seekrhq/seekr/store"
)

type trendingTopicResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	ReadTime    string `json:"readTime,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ViewCount   int64  `json:"viewCount"`
	CreatedAt   int64  `json:"createdAt"`
}

func (s *APIV1Service) ListTrendingTopics(c echo.Context) error {
	ctx := c.Request().Context()

	topics, err := s.Store.ListTrendingTopics(ctx, 10)
	if err != nil {
		slog.Error("failed to list trending topics", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get trending topics")
	}

	list := make([]trendingTopicResponse, 0, len(topics))
	for _, topic := range topics {
		list = append(list, renderTrendingTopic(topic))
	}
	return c.JSON(http.StatusOK, list)
}

func (s *APIV1Service) IncrementTopicViews(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.Store.IncrementTopicViews(ctx, c.Param("id")); err != nil {
		slog.Error("failed to increment topic views", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to increment views")
	}
	metrics.RecordTopicView()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func renderTrendingTopic(topic *store.TrendingTopic) trendingTopicResponse {
	return trendingTopicResponse{
		ID:          topic.ID,
		Title:       topic.Title,
		Description: topic.Description,
		Category:    topic.Category,
		ReadTime:    topic.ReadTime,
		Icon:        topic.Icon,
		ViewCount:   topic.ViewCount,
		CreatedAt:   topic.CreatedTs,
	}
}
