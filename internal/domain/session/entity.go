package session

import (
	"errors"
	"time"

	"booking-gateway/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrMissingAccessToken = errors.New("access token is required")
	ErrExpired            = errors.New("session expired")
)

// Session binds an opaque browser cookie to the marketplace tokens of one signed-in user.
type Session struct {
	id           uuid.UUID
	accessToken  string
	refreshToken string
	userID       int64
	role         user.Role
	expiresAt    time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func New(accessToken, refreshToken string, userID int64, role user.Role, now time.Time, ttl time.Duration) (*Session, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if !role.IsValid() {
		return nil, user.ErrInvalidRole
	}

	return &Session{
		id:           uuid.New(),
		accessToken:  accessToken,
		refreshToken: refreshToken,
		userID:       userID,
		role:         role,
		expiresAt:    now.Add(ttl),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	accessToken, refreshToken string,
	userID int64,
	role user.Role,
	expiresAt, createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:           id,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		userID:       userID,
		role:         role,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Rotate replaces the tokens after a refresh. An empty refresh token keeps the old one.
func (s *Session) Rotate(accessToken, refreshToken string, now time.Time) error {
	if accessToken == "" {
		return ErrMissingAccessToken
	}
	s.accessToken = accessToken
	if refreshToken != "" {
		s.refreshToken = refreshToken
	}
	s.updatedAt = now
	return nil
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) AccessToken() string  { return s.accessToken }
func (s *Session) RefreshToken() string { return s.refreshToken }
func (s *Session) UserID() int64        { return s.userID }
func (s *Session) Role() user.Role      { return s.role }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }
