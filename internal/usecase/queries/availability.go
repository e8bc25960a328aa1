package queries

import (
	"context"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"
)

// AvailabilityQueries resolves bookable start times. The marketplace computes them; the
// gateway only translates the calendar day into the instant the endpoint expects.
type AvailabilityQueries interface {
	AvailableHours(ctx context.Context, v shared.Viewer, serviceID int64, day time.Time, timezone string) ([]string, error)
}

type availabilityQueriesImpl struct {
	gateway shared.MarketplaceGateway
	slots   *reservation.SlotFactory
}

func NewAvailabilityQueries(gateway shared.MarketplaceGateway, slots *reservation.SlotFactory) AvailabilityQueries {
	return &availabilityQueriesImpl{gateway: gateway, slots: slots}
}

func (q *availabilityQueriesImpl) AvailableHours(ctx context.Context, v shared.Viewer, serviceID int64, day time.Time, timezone string) ([]string, error) {
	factory := q.slots
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, booking.ErrInvalidTimezone
		}
		factory = factory.In(loc)
	}

	hours, err := q.gateway.AvailableHours(ctx, v.Tokens, serviceID, factory.DayStart(day))
	if err != nil {
		return nil, errs.Wrap(err, "available hours")
	}
	return hours, nil
}
