package edge_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/serroba/shortlink/internal/edge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const indexHTML = "<!doctype html><title>shortener</title>"

func newTestRouter(t *testing.T, assets fstest.MapFS) *chi.Mux {
	t.Helper()

	router := chi.NewMux()
	edge.NewHandler(assets, "http://localhost:3000", 7, zap.NewNop()).RegisterRoutes(router)

	return router
}

func defaultAssets() fstest.MapFS {
	return fstest.MapFS{
		"index.html":     {Data: []byte(indexHTML)},
		"app.js":         {Data: []byte("console.log('hi')")},
		"styles/app.css": {Data: []byte("body{}")},
	}
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	return w
}

func TestHandler_Index(t *testing.T) {
	router := newTestRouter(t, defaultAssets())

	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, indexHTML, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestHandler_Segment(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		redirect string
	}{
		{name: "alphanumeric id", path: "/aB3xY9z", redirect: "http://localhost:3000/aB3xY9z"},
		{name: "digits id", path: "/1234567", redirect: "http://localhost:3000/1234567"},
		{name: "too short", path: "/abc123"},
		{name: "too long", path: "/abc12345"},
		{name: "dash", path: "/abc-123"},
		{name: "underscore", path: "/abc_123"},
		{name: "client route", path: "/about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, defaultAssets())

			w := get(router, tt.path)

			if tt.redirect != "" {
				assert.Equal(t, http.StatusFound, w.Code)
				assert.Equal(t, tt.redirect, w.Header().Get("Location"))

				return
			}

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, indexHTML, w.Body.String())
		})
	}
}

func TestHandler_Assets(t *testing.T) {
	t.Run("serves top-level asset", func(t *testing.T) {
		router := newTestRouter(t, defaultAssets())

		w := get(router, "/app.js")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "console.log('hi')", w.Body.String())
	})

	t.Run("asset wins over id shape", func(t *testing.T) {
		assets := defaultAssets()
		assets["robots7"] = &fstest.MapFile{Data: []byte("User-agent: *")}
		router := newTestRouter(t, assets)

		w := get(router, "/robots7")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User-agent: *", w.Body.String())
	})

	t.Run("serves nested asset", func(t *testing.T) {
		router := newTestRouter(t, defaultAssets())

		w := get(router, "/styles/app.css")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "body{}", w.Body.String())
	})

	t.Run("unknown nested path falls back to entry page", func(t *testing.T) {
		router := newTestRouter(t, defaultAssets())

		w := get(router, "/users/42/profile")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, indexHTML, w.Body.String())
	})
}

func TestHandler_Head(t *testing.T) {
	router := newTestRouter(t, defaultAssets())

	head := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodHead, target, nil))

		return w
	}

	t.Run("entry page", func(t *testing.T) {
		w := head("/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Empty(t, w.Body.String())
	})

	t.Run("client route", func(t *testing.T) {
		w := head("/about")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("short id", func(t *testing.T) {
		w := head("/aB3xY9z")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://localhost:3000/aB3xY9z", w.Header().Get("Location"))
	})

	t.Run("asset", func(t *testing.T) {
		w := head("/app.js")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_MissingIndex(t *testing.T) {
	router := newTestRouter(t, fstest.MapFS{})

	w := get(router, "/")

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_TrailingSlashInShortenerURL(t *testing.T) {
	router := chi.NewMux()
	edge.NewHandler(defaultAssets(), "/api/", 7, zap.NewNop()).RegisterRoutes(router)

	w := get(router, "/aB3xY9z")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/aB3xY9z", w.Header().Get("Location"))
}
