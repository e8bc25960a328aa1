package shared

import (
	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra/marketplace"

	"github.com/google/uuid"
)

// Viewer is the signed-in caller resolved from the session cookie.
type Viewer struct {
	SessionID uuid.UUID
	UserID    int64
	Role      user.Role
	Tokens    marketplace.Tokens
}

func ViewerFrom(sess *session.Session) Viewer {
	return Viewer{
		SessionID: sess.ID(),
		UserID:    sess.UserID(),
		Role:      sess.Role(),
		Tokens:    TokensOf(sess),
	}
}

func TokensOf(sess *session.Session) marketplace.Tokens {
	return marketplace.Tokens{Access: sess.AccessToken(), Refresh: sess.RefreshToken()}
}
