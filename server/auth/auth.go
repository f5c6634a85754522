package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	issuer        = "seekr"
	tokenLifetime = 7 * 24 * time.Hour

	// UserIDContextKey is where middleware stores the authenticated user id.
	UserIDContextKey = "auth.userID"
)

// ClaimsMessage includes standard JWT claims plus the user id.
type ClaimsMessage struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// HashPassword generates a bcrypt hash for the given password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(bytes), nil
}

// ComparePassword reports whether password matches the stored bcrypt hash.
func ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Error("failed to compare password hash", slog.String("error", err.Error()))
		}
		return false
	}
	return true
}

// GenerateToken signs a new access token for the given user.
func GenerateToken(userID string, secret string) (string, error) {
	now := time.Now()
	claims := ClaimsMessage{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// ParseToken validates tokenString and returns the user id it carries.
func ParseToken(tokenString string, secret string) (string, error) {
	claims := &ClaimsMessage{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

// Middleware requires a valid bearer token and stores the user id in the
// echo context under UserIDContextKey.
func Middleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := userIDFromRequest(c, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}

// OptionalMiddleware stores the user id when a valid bearer token is present
// and lets the request through otherwise.
func OptionalMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, err := userIDFromRequest(c, secret); err == nil {
				c.Set(UserIDContextKey, userID)
			}
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id or empty string.
func UserIDFromContext(c echo.Context) string {
	userID, _ := c.Get(UserIDContextKey).(string)
	return userID
}

func userIDFromRequest(c echo.Context, secret string) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header required")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("malformed authorization header")
	}
	return ParseToken(parts[1], secret)
}
