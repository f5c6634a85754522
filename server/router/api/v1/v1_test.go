package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/store"
	"github.com/seekrhq/seekr/store/db"
)

func newTestingServer(t *testing.T) *echo.Echo {
	t.Helper()
	testingProfile := &profile.Profile{Mode: "dev", Driver: "memory", JWTSecret: "test-secret"}
	dbDriver, err := db.NewDBDriver(testingProfile)
	require.NoError(t, err)
	st := store.New(dbDriver, testingProfile)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	e := echo.New()
	NewAPIV1Service("test-secret", testingProfile, st).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignupLoginFlow(t *testing.T) {
	e := newTestingServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"email":"eve@example.com","password":"secret1","firstName":"Eve","lastName":"Adams"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var signup authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.Token)
	require.Equal(t, "eve@example.com", signup.User.Email)

	// Duplicate email is rejected.
	rec = doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"email":"Eve@Example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong password.
	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"eve@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct login.
	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"eve@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var login authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	// Authenticated profile lookup.
	rec = doJSON(e, http.MethodGet, "/api/auth/user", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var user userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "Eve", user.FirstName)

	// Missing token.
	rec = doJSON(e, http.MethodGet, "/api/auth/user", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignupValidation(t *testing.T) {
	e := newTestingServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/signup", `{"email":"not-an-email","password":"secret1"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/signup", `{"email":"ok@example.com","password":"short"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategories(t *testing.T) {
	e := newTestingServer(t)

	rec := doJSON(e, http.MethodGet, "/api/categories", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []categoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 4)
	require.Equal(t, "finance", categories[0].ID)
	require.Equal(t, "/academic", categories[3].Href)
}

func TestTrendingEndpoints(t *testing.T) {
	e := newTestingServer(t)

	rec := doJSON(e, http.MethodGet, "/api/trending", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var topics []trendingTopicResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &topics))
	require.Len(t, topics, 6)
	require.Equal(t, int64(1250), topics[0].ViewCount)

	rec = doJSON(e, http.MethodPost, "/api/trending/"+topics[5].ID+"/view", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestSpacesEndpoint(t *testing.T) {
	e := newTestingServer(t)

	rec := doJSON(e, http.MethodGet, "/api/spaces", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var spaces []spaceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spaces))
	require.Len(t, spaces, 3)

	rec = doJSON(e, http.MethodGet, "/api/spaces?category=Creative", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spaces))
	require.Len(t, spaces, 1)
	require.Equal(t, "Creative Writing", spaces[0].Title)
}

func TestSearchEndpoint(t *testing.T) {
	e := newTestingServer(t)

	rec := doJSON(e, http.MethodPost, "/api/search", `{"query":"what is go","category":"academic"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result["searchId"])
	// No generator is configured in tests, so the fallback copy answers.
	require.Contains(t, result["response"], "I apologize")

	rec = doJSON(e, http.MethodGet, "/api/search/"+result["searchId"].(string), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/search/no-such-id", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/search", `{"category":"academic"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatThreadEndpoints(t *testing.T) {
	e := newTestingServer(t)

	rec := doJSON(e, http.MethodPost, "/api/chat/threads", `{"message":"hello seekr"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	threadID := result["threadId"].(string)
	require.NotEmpty(t, threadID)

	rec = doJSON(e, http.MethodGet, "/api/chat/threads", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/chat/threads/"+threadID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/chat/search?q=hello", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/chat/threads/"+threadID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/chat/threads/"+threadID, "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/chat/threads", `{"message":"hi","threadId":"missing"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
