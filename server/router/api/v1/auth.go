package v1

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/server/auth"
	"github.com/seekrhq/seekr/store"
)

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (s *APIV1Service) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	req := &signupRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "valid email is required")
	}
	if len(req.Password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}

	existing, err := s.Store.GetUser(ctx, &store.FindUser{Email: &req.Email})
	if err != nil {
		slog.Error("failed to look up user", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "signup failed")
	}
	if existing != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user already exists with this email")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "signup failed")
	}

	user, err := s.Store.UpsertUser(ctx, &store.UpsertUser{
		Email:        req.Email,
		PasswordHash: &passwordHash,
		FirstName:    &req.FirstName,
		LastName:     &req.LastName,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, "user already exists with this email")
		}
		slog.Error("failed to create user", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "signup failed")
	}

	token, err := auth.GenerateToken(user.ID, s.Secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "signup failed")
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: renderUser(user)})
}

func (s *APIV1Service) Login(c echo.Context) error {
	ctx := c.Request().Context()
	req := &loginRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	user, err := s.Store.GetUser(ctx, &store.FindUser{Email: &req.Email})
	if err != nil {
		slog.Error("failed to look up user", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	if user == nil || !auth.ComparePassword(req.Password, user.PasswordHash) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, s.Secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: renderUser(user)})
}

func (s *APIV1Service) GetAuthUser(c echo.Context) error {
	ctx := c.Request().Context()
	userID := auth.UserIDFromContext(c)

	user, err := s.Store.GetUser(ctx, &store.FindUser{ID: &userID})
	if err != nil {
		slog.Error("failed to get user", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get user")
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, renderUser(user))
}

func renderUser(user *store.User) userResponse {
	return userResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
	}
}
