//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"booking-gateway/tests/common/httptest"

	"github.com/stretchr/testify/suite"
)

type CORSTestSuite struct {
	routerSuite
}

func TestCORSSuite(t *testing.T) {
	suite.Run(t, new(CORSTestSuite))
}

func (s *CORSTestSuite) TestPreflight() {
	s.Run("allowed origin may send the session cookie", func() {
		w := httptest.PerformPreflight(s.T(), s.router, "/api/booking-flows", "http://localhost:3000", http.MethodPost)

		s.Equal(http.StatusNoContent, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Access-Control-Allow-Origin":      "http://localhost:3000",
			"Access-Control-Allow-Credentials": "true",
		})
	})

	s.Run("unknown origin is refused", func() {
		w := httptest.PerformPreflight(s.T(), s.router, "/api/booking-flows", "http://evil.example", http.MethodPost)

		s.Equal(http.StatusForbidden, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Access-Control-Allow-Origin":      "",
			"Access-Control-Allow-Credentials": "",
		})
	})
}
