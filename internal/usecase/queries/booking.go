package queries

import (
	"context"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/infra"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetFlow(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error)
}

type bookingQueriesImpl struct {
	flows FlowReader
	clock clock.Clock
}

func NewBookingQueries(flows FlowReader, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{flows: flows, clock: clock}
}

func (q *bookingQueriesImpl) GetFlow(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
	f, err := q.flows.Get(ctx, id, v.SessionID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrFlowNotFound)
		}
		return nil, errs.Wrap(err, "load booking flow")
	}
	return f, nil
}
