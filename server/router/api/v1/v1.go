package v1

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/plugin/ai"
	"github.com/seekrhq/seekr/server/auth"
	"github.com/seekrhq/seekr/server/service/chat"
	"github.com/seekrhq/seekr/server/service/search"
	"github.com/seekrhq/seekr/store"
)

type APIV1Service struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	SearchService *search.Service
	ChatService   *chat.Service
}

func NewAPIV1Service(secret string, profile *profile.Profile, store *store.Store) *APIV1Service {
	generator := ai.NewGenerator(profile)
	return &APIV1Service{
		Secret:        secret,
		Profile:       profile,
		Store:         store,
		SearchService: search.NewService(store, generator),
		ChatService:   chat.NewService(store, generator),
	}
}

// RegisterRoutes registers all REST handlers with the given Echo instance.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	apiGroup := echoServer.Group("/api")
	apiGroup.Use(middleware.CORS())
	apiGroup.Use(auth.OptionalMiddleware(s.Secret))

	apiGroup.POST("/auth/signup", s.Signup)
	apiGroup.POST("/auth/login", s.Login)
	apiGroup.GET("/auth/user", s.GetAuthUser, auth.Middleware(s.Secret))

	apiGroup.POST("/search", s.RunSearch)
	apiGroup.GET("/search/suggestions", s.GetSearchSuggestions)
	apiGroup.GET("/search/:id", s.GetSearch)

	apiGroup.GET("/trending", s.ListTrendingTopics)
	apiGroup.POST("/trending/:id/view", s.IncrementTopicViews)

	apiGroup.GET("/spaces", s.ListSpaces)
	apiGroup.GET("/categories", s.ListCategories)

	apiGroup.POST("/chat/threads", s.AppendThreadMessage)
	apiGroup.GET("/chat/threads", s.ListThreads)
	apiGroup.GET("/chat/threads/:id", s.GetThread)
	apiGroup.DELETE("/chat/threads/:id", s.DeleteThread)
	apiGroup.GET("/chat/search", s.SearchThreads)
	apiGroup.POST("/chat", s.Chat)
}
