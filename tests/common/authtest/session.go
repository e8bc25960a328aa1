//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

// NewSession returns a live session for userID valid for an hour.
func NewSession(t *testing.T, userID int64, role user.Role) *session.Session {
	t.Helper()
	sess, err := session.New("access-token", "refresh-token", userID, role, time.Now(), time.Hour)
	require.NoError(t, err)
	return sess
}

// Cookie is the cookie the browser sends back for sess.
func Cookie(cfg config.Config, sess *session.Session) *http.Cookie {
	return &http.Cookie{Name: cfg.Cookie.Name, Value: sess.ID().String()}
}

// Cleared reports whether the response cookie deletes the session cookie.
func Cleared(c *http.Cookie) bool {
	return c != nil && c.Value == "" && c.MaxAge < 0
}
