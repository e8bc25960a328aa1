package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/infra/events"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/queries"
	"booking-gateway/internal/usecase/shared"
)

var (
	ErrActionNotOffered = errs.New("action is not offered for this reservation")
	ErrSlotRequired     = errs.New("start and end time are required to reschedule")
)

type DispatchInput struct {
	ReservationID int64
	Action        reservation.Action
	// Page and PageSize locate the reservation and are re-fetched after the update.
	Page      int
	PageSize  int
	StartTime *time.Time
	EndTime   *time.Time
}

type ReservationCommands interface {
	// Dispatch issues the status update for action and returns the re-fetched page. Nothing
	// is applied locally.
	Dispatch(ctx context.Context, v shared.Viewer, in DispatchInput) (*queries.ReservationPage, error)
}

type reservationCommandsImpl struct {
	gateway      shared.MarketplaceGateway
	reservations queries.ReservationQueries
	publisher    shared.EventPublisher
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationCommands(
	gateway shared.MarketplaceGateway,
	reservations queries.ReservationQueries,
	publisher shared.EventPublisher,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		gateway:      gateway,
		reservations: reservations,
		publisher:    publisher,
		clock:        clock,
		logger:       logger,
	}
}

func (u *reservationCommandsImpl) Dispatch(ctx context.Context, v shared.Viewer, in DispatchInput) (*queries.ReservationPage, error) {
	page, err := u.reservations.List(ctx, v, in.Page, in.PageSize)
	if err != nil {
		return nil, err
	}
	item, ok := page.Find(in.ReservationID)
	if !ok {
		return nil, shared.ErrReservationNotFound
	}
	if !item.Reservation.Offers(v.Role, in.Action) {
		return nil, ErrActionNotOffered
	}

	req := marketplace.UpdateReservationRequest{Status: in.Action.TargetStatus().String()}
	if in.Action.RequiresSlot() {
		if in.StartTime == nil || in.EndTime == nil {
			return nil, ErrSlotRequired
		}
		slot, err := reservation.NewTimeSlot(*in.StartTime, *in.EndTime)
		if err != nil {
			return nil, err
		}
		start, end := slot.Start(), slot.End()
		req.StartTime, req.EndTime = &start, &end
	}

	if _, err := u.gateway.UpdateReservation(ctx, v.Tokens, in.ReservationID, req); err != nil {
		return nil, errs.Wrap(err, "update reservation")
	}
	u.publish(ctx, v, in, req)

	return u.reservations.List(ctx, v, page.Page, page.PageSize)
}

func (u *reservationCommandsImpl) publish(ctx context.Context, v shared.Viewer, in DispatchInput, req marketplace.UpdateReservationRequest) {
	e := events.Event{
		Type:          events.TypeTransitioned,
		ReservationID: in.ReservationID,
		UserID:        v.UserID,
		Role:          v.Role.String(),
		Status:        req.Status,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		OccurredAt:    u.clock.Now(),
	}
	if in.Action == reservation.ActionReschedule {
		e.Type = events.TypeRescheduled
	}
	if err := u.publisher.Publish(context.WithoutCancel(ctx), e); err != nil {
		u.logger.Warn("failed to publish reservation event", "reservation_id", in.ReservationID, "error", err)
	}
}
