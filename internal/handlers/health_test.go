package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrudat/Nomenklatura-sub003/internal/storage"
)

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("healthy storage", func(t *testing.T) {
		h := NewHealthHandler(storage.NewMockStorage(), logger)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Components["storage"])
	})

	t.Run("unhealthy storage", func(t *testing.T) {
		mock := storage.NewMockStorage()
		mock.PingError = errors.New("connection refused")
		h := NewHealthHandler(mock, logger)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unhealthy", resp.Components["storage"])
	})
}
