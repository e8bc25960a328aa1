//go:build unit

package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-gateway/internal/handler/middleware"
	"booking-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	router.GET("/api/reservations", func(c *gin.Context) {
		c.Status(http.StatusConflict)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("Idempotency-Key", "k-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var lines []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 2)

	started, completed := lines[0], lines[1]
	assert.Equal(t, "Request started", started["msg"])
	assert.Equal(t, "Request completed", completed["msg"])
	assert.Equal(t, "WARN", completed["level"])
	assert.Equal(t, started["request_id"], completed["request_id"])
	assert.Equal(t, "/api/reservations", completed["path"])
	assert.EqualValues(t, http.StatusConflict, completed["status_code"])
	for _, line := range lines {
		assert.NotContains(t, line, "idempotency_key")
	}
}
