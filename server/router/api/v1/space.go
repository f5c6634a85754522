package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seekrhq/seekr/store"
)

type spaceResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	TemplateCount int32    `json:"templateCount"`
	Icon          string   `json:"icon,omitempty"`
	Gradient      string   `json:"gradient,omitempty"`
	Tags          []string `json:"tags"`
	CreatedAt     int64    `json:"createdAt"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Href        string `json:"href"`
}

func (s *APIV1Service) ListSpaces(c echo.Context) error {
	ctx := c.Request().Context()

	var spaces []*store.Space
	var err error
	if category := c.QueryParam("category"); category != "" {
		spaces, err = s.Store.ListSpacesByCategory(ctx, category)
	} else {
		spaces, err = s.Store.ListSpaces(ctx, 10)
	}
	if err != nil {
		slog.Error("failed to list spaces", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get spaces")
	}

	list := make([]spaceResponse, 0, len(spaces))
	for _, space := range spaces {
		tags := space.Tags
		if tags == nil {
			tags = []string{}
		}
		list = append(list, spaceResponse{
			ID:            space.ID,
			Title:         space.Title,
			Description:   space.Description,
			Category:      space.Category,
			TemplateCount: space.TemplateCount,
			Icon:          space.Icon,
			Gradient:      space.Gradient,
			Tags:          tags,
			CreatedAt:     space.CreatedTs,
		})
	}
	return c.JSON(http.StatusOK, list)
}

// ListCategories returns the fixed category set the frontend renders on the
// home page.
func (s *APIV1Service) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, []categoryResponse{
		{
			ID:          "finance",
			Name:        "Finance",
			Description: "Get insights on markets, investments, and financial planning",
			Icon:        "DollarSign",
			Color:       "green",
			Href:        "/finance",
		},
		{
			ID:          "travel",
			Name:        "Travel",
			Description: "Discover destinations, plan trips, and travel tips",
			Icon:        "Plane",
			Color:       "blue",
			Href:        "/travel",
		},
		{
			ID:          "shopping",
			Name:        "Shopping",
			Description: "Find products, compare prices, and shopping advice",
			Icon:        "ShoppingBag",
			Color:       "purple",
			Href:        "/shopping",
		},
		{
			ID:          "academic",
			Name:        "Academic",
			Description: "Research assistance and educational content",
			Icon:        "GraduationCap",
			Color:       "orange",
			Href:        "/academic",
		},
	})
}
