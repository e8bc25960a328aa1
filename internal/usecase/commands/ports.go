package commands

import (
	"context"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/session"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, sess *session.Session) error
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
	UpdateTokens(ctx context.Context, sess *session.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type FlowRepository interface {
	Create(ctx context.Context, f *booking.Flow) error
	Get(ctx context.Context, id, sessionID uuid.UUID, now time.Time) (*booking.Flow, error)
	Update(ctx context.Context, next *booking.Flow) (*booking.Flow, error)
	Delete(ctx context.Context, id, sessionID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TokenInspector interface {
	NeedsRefresh(token string, now time.Time, leeway time.Duration) (bool, error)
}
