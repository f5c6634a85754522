package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/server/service/chat"
)

type appendThreadRequest struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId"`
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}

func (s *APIV1Service) AppendThreadMessage(c echo.Context) error {
	ctx := c.Request().Context()
	req := &appendThreadRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	result, err := s.ChatService.AppendMessage(ctx, req.ThreadID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrThreadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "thread not found")
		}
		slog.Error("chat thread failed", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "chat failed")
	}
	return c.JSON(http.StatusOK, result)
}

func (s *APIV1Service) ListThreads(c echo.Context) error {
	ctx := c.Request().Context()
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	threads, err := s.ChatService.ListThreads(ctx, limit)
	if err != nil {
		slog.Error("failed to list threads", slog.String("error", err.Error()))
		// The original client treats an empty list as the error state.
		return c.JSON(http.StatusOK, []*chat.ThreadSummary{})
	}
	return c.JSON(http.StatusOK, threads)
}

func (s *APIV1Service) GetThread(c echo.Context) error {
	ctx := c.Request().Context()

	thread, err := s.ChatService.GetThread(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, chat.ErrThreadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "thread not found")
		}
		slog.Error("failed to get thread", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get thread")
	}
	return c.JSON(http.StatusOK, thread)
}

func (s *APIV1Service) DeleteThread(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.ChatService.DeleteThread(ctx, c.Param("id")); err != nil {
		if errors.Is(err, chat.ErrThreadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "thread not found")
		}
		slog.Error("failed to delete thread", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete thread")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (s *APIV1Service) SearchThreads(c echo.Context) error {
	ctx := c.Request().Context()
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusOK, []*chat.ThreadSummary{})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	threads, err := s.ChatService.SearchThreads(ctx, q, limit)
	if err != nil {
		slog.Error("failed to search threads", slog.String("error", err.Error()))
		return c.JSON(http.StatusOK, []*chat.ThreadSummary{})
	}
	return c.JSON(http.StatusOK, threads)
}

// Chat is the legacy endpoint kept for older clients. It answers without the
// thread envelope.
func (s *APIV1Service) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	req := &chatRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	result, err := s.ChatService.Reply(ctx, req.ConversationID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrThreadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "conversation not found")
		}
		slog.Error("chat failed", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "chat failed")
	}
	return c.JSON(http.StatusOK, result)
}
