//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// PerformPreflight sends a CORS preflight for method on path from origin.
func PerformPreflight(t *testing.T, router *gin.Engine, path, origin, method string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", method)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// AssertHeaders compares response headers. An empty expected value means the header must be absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		if want == "" {
			assert.Empty(t, w.Header().Values(name), "header %s should not be set", name)
			continue
		}
		assert.Equal(t, want, w.Header().Get(name), "header %s", name)
	}
}
