package cookie

import (
	"net/http"
	"time"

	"booking-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie stores the opaque session id. Tokens never leave the gateway.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.Name,
		sessionID,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.Name,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context, cfg config.CookieConfig) string {
	id, _ := c.Cookie(cfg.Name)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
