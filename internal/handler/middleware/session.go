package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/handler/httperr"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/cookie"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionKey = "session"

var errMissingSession = errs.New("session cookie missing or malformed")

type SessionMiddleware struct {
	sessions commands.SessionCommands
	cookie   config.CookieConfig
	logger   *slog.Logger
}

func NewSessionMiddleware(sessions commands.SessionCommands, cfg config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cookie:   cfg.Cookie,
		logger:   logger,
	}
}

// RequireSession resolves the session cookie into a live session. A request that ends
// with 401 after the handler ran means the marketplace refused the session's tokens, so
// the session is dropped.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(cookie.GetSessionID(c, m.cookie))
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errMissingSession), "Authentication required", nil)
			return
		}

		sess, err := m.sessions.Resolve(c.Request.Context(), id)
		if err != nil {
			if errs.IsAny(err, commands.ErrSessionNotFound, commands.ErrSessionExpired) {
				cookie.ClearSessionCookie(c, m.cookie)
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired, please sign in again", nil)
				return
			}
			m.logger.Error("failed to resolve session", "session_id", id, "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()

		if c.Writer.Status() == http.StatusUnauthorized {
			if err := m.sessions.Invalidate(context.WithoutCancel(c.Request.Context()), id); err != nil {
				m.logger.Warn("failed to drop rejected session", "session_id", id, "error", err)
			}
		}
	}
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func GetViewer(c *gin.Context) (shared.Viewer, bool) {
	sess, ok := GetSession(c)
	if !ok {
		return shared.Viewer{}, false
	}
	return shared.ViewerFrom(sess), true
}
