//go:build e2e

package e2e

import (
	"net/http"

	"booking-gateway/tests/common/httptest"
)

// Login signs in through the gateway and returns the session cookie it issued.
func (s *SharedSuite) Login(email string) *http.Cookie {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": fakePassword})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, s.Config.Cookie.Name)
	s.Require().NotNil(c, "login did not set the session cookie")
	return &http.Cookie{Name: c.Name, Value: c.Value}
}
