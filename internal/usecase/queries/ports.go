package queries

import (
	"context"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/search"

	"github.com/google/uuid"
)

type FlowReader interface {
	Get(ctx context.Context, id, sessionID uuid.UUID, now time.Time) (*booking.Flow, error)
}

type SearchStateRepository interface {
	Get(ctx context.Context, sessionID uuid.UUID) (search.State, bool, error)
	Save(ctx context.Context, sessionID uuid.UUID, state search.State, now time.Time) error
}
