package routes

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterboxer.com/project-forum/database"
	"masterboxer.com/project-forum/models"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()

	ctx := context.Background()
	db, err := database.ConnectDB(ctx, "sqlite", filepath.Join(t.TempDir(), "forum.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(ctx, db, database.DialectSQLite, false))

	return database.NewStore(db)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRootGreeting(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{})

	rr := serve(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello world!", rr.Body.String())
}

func TestHealth(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{})

	rr := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success": true, "data": "ok"}`, rr.Body.String())
}

func TestMissingTrailingSlashRedirects(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{})

	tests := []struct {
		method   string
		target   string
		status   int
		location string
	}{
		{method: http.MethodGet, target: "/api/posts", status: http.StatusMovedPermanently, location: "/api/posts/"},
		{method: http.MethodGet, target: "/api/posts/author/Megan?x=1", status: http.StatusMovedPermanently, location: "/api/posts/author/Megan/?x=1"},
		{method: http.MethodPost, target: "/api/posts", status: http.StatusPermanentRedirect, location: "/api/posts/"},
		{method: http.MethodDelete, target: "/api/post/1", status: http.StatusPermanentRedirect, location: "/api/post/1/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := serve(router, tt.method, tt.target, `{"text": "x"}`)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
		})
	}
}

func TestPathsWithoutSlashRouteDirectly(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{})

	rr := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{})

	for _, target := range []string{"/api/nothing/", "/api/post/abc/"} {
		rr := serve(router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, target)
		assert.JSONEq(t, `{"success": false, "error": "Not found"}`, rr.Body.String(), target)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{})

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodPut, target: "/api/posts/"},
		{method: http.MethodDelete, target: "/api/posts/"},
		{method: http.MethodPost, target: "/api/posts/author/Megan/"},
		{method: http.MethodPut, target: "/api/post/1/"},
		{method: http.MethodPost, target: "/api/post/1/comments/"},
		{method: http.MethodGet, target: "/api/post/1/comment/"},
		{method: http.MethodPut, target: "/api/post/1/comment/"},
		{method: http.MethodPost, target: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := serve(router, tt.method, tt.target, `{"text": "x"}`)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.JSONEq(t, `{"success": false, "error": "Method not allowed"}`, rr.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{MetricsEnabled: true})

	rr := serve(router, http.MethodPost, "/api/posts/", `{"text": "Hello, World!"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `forum_http_requests_total{method="POST",route="/api/posts/",status="201"}`)
	assert.Contains(t, rr.Body.String(), "forum_http_request_duration_seconds")
}

func TestUnmatchedRequestsAreCountedAndLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	router := NewRouter(newTestStore(t), Options{Logger: logger, MetricsEnabled: true})

	rr := serve(router, http.MethodGet, "/api/nothing/", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	assert.Contains(t, logs.String(), `"path":"/api/nothing/"`)
	assert.Contains(t, logs.String(), `"route":"unmatched"`)
	assert.Contains(t, logs.String(), `"status":404`)

	rr = serve(router, http.MethodGet, "/metrics", "")
	assert.Contains(t, rr.Body.String(), `forum_http_requests_total{method="GET",route="unmatched",status="404"}`)
}

func TestMatchedRequestsLogRouteTemplate(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	router := NewRouter(newTestStore(t), Options{Logger: logger})

	rr := serve(router, http.MethodGet, "/api/post/7/", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	assert.Contains(t, logs.String(), `"route":"/api/post/{id:[0-9]+}/"`)
}

func TestMetricsDisabled(t *testing.T) {
	router := NewRouter(newTestStore(t), Options{})

	rr := serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type panickingStore struct {
	*database.Store
}

func (panickingStore) ListPosts(context.Context) ([]models.Post, error) {
	panic("boom")
}

func TestPanicRecovered(t *testing.T) {
	router := NewRouter(panickingStore{newTestStore(t)}, Options{})

	rr := serve(router, http.MethodGet, "/api/posts/", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success": false, "error": "Internal server error"}`, rr.Body.String())
}
