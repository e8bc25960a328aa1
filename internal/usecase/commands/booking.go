package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/infra"
	"booking-gateway/internal/infra/events"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/queries"
	"booking-gateway/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrFlowConflict         = errs.New("booking flow was changed by another request")
	ErrNothingToBook        = errs.New("company offers none of the requested services")
	ErrRescheduleNotOffered = errs.New("reservation cannot be rescheduled")
)

type StartFlowInput struct {
	CompanyID  int64
	ServiceIDs []int64
	// ReservationID starts a reschedule of a reservation listed on Page.
	ReservationID *int64
	Page          int
	PageSize      int
	// Timezone overrides the configured booking timezone for this flow.
	Timezone string
}

type SubmitResult struct {
	Flow    *booking.Flow
	Message string
	// Reservations is the re-fetched list page a reschedule was started from.
	Reservations *queries.ReservationPage
}

type BookingCommands interface {
	Start(ctx context.Context, v shared.Viewer, in StartFlowInput) (*booking.Flow, error)
	PickService(ctx context.Context, v shared.Viewer, id uuid.UUID, serviceID int64) (*booking.Flow, error)
	NextService(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error)
	PreviousService(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error)
	PickDay(ctx context.Context, v shared.Viewer, id uuid.UUID, day time.Time) (*booking.Flow, error)
	PickHour(ctx context.Context, v shared.Viewer, id uuid.UUID, hour string) (*booking.Flow, error)
	ChangeDay(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error)
	Submit(ctx context.Context, v shared.Viewer, id uuid.UUID) (*SubmitResult, error)
	Cancel(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error)
	Close(ctx context.Context, v shared.Viewer, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	flows        FlowRepository
	gateway      shared.MarketplaceGateway
	reservations queries.ReservationQueries
	publisher    shared.EventPublisher
	slots        *reservation.SlotFactory
	timezone     string
	clock        clock.Clock
	logger       *slog.Logger
}

func NewBookingCommands(
	flows FlowRepository,
	gateway shared.MarketplaceGateway,
	reservations queries.ReservationQueries,
	publisher shared.EventPublisher,
	slots *reservation.SlotFactory,
	cfg config.Config,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		flows:        flows,
		gateway:      gateway,
		reservations: reservations,
		publisher:    publisher,
		slots:        slots,
		timezone:     cfg.Booking.TimeZone,
		clock:        clock,
		logger:       logger,
	}
}

func (u *bookingCommandsImpl) Start(ctx context.Context, v shared.Viewer, in StartFlowInput) (*booking.Flow, error) {
	timezone := in.Timezone
	if timezone == "" {
		timezone = u.timezone
	}

	var (
		services   []reservation.Service
		reschedule *booking.Reschedule
		err        error
	)
	if in.ReservationID != nil {
		services, reschedule, err = u.rescheduleTarget(ctx, v, *in.ReservationID, in.Page, in.PageSize)
	} else {
		services, err = u.companyServices(ctx, v, in.CompanyID, in.ServiceIDs)
	}
	if err != nil {
		return nil, err
	}

	f, err := booking.Start(v.SessionID, services, reschedule, timezone, u.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := u.flows.Create(ctx, f); err != nil {
		return nil, errs.Wrap(err, "create booking flow")
	}

	u.logger.Info("booking flow started",
		"flow_id", f.ID(), "session_id", v.SessionID, "services", len(services), "reschedule", reschedule != nil)
	return f, nil
}

// companyServices returns the requested services in request order, or the whole catalog
// when none were named.
func (u *bookingCommandsImpl) companyServices(ctx context.Context, v shared.Viewer, companyID int64, ids []int64) ([]reservation.Service, error) {
	company, err := u.gateway.GetCompany(ctx, v.Tokens, companyID)
	if err != nil {
		return nil, errs.Wrap(err, "load company")
	}
	catalog, err := shared.ToServices(company.Services)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, ErrNothingToBook
	}
	if len(ids) == 0 {
		return catalog, nil
	}

	picked := make([]reservation.Service, 0, len(ids))
	for _, id := range ids {
		idx := slices.IndexFunc(catalog, func(s reservation.Service) bool { return s.ID() == id })
		if idx < 0 {
			return nil, errs.Wrap(booking.ErrUnknownService, "company does not offer the service")
		}
		if slices.ContainsFunc(picked, func(s reservation.Service) bool { return s.ID() == id }) {
			continue
		}
		picked = append(picked, catalog[idx])
	}
	if len(picked) == 0 {
		return nil, ErrNothingToBook
	}
	return picked, nil
}

func (u *bookingCommandsImpl) rescheduleTarget(ctx context.Context, v shared.Viewer, reservationID int64, page, pageSize int) ([]reservation.Service, *booking.Reschedule, error) {
	list, err := u.reservations.List(ctx, v, page, pageSize)
	if err != nil {
		return nil, nil, err
	}
	item, ok := list.Find(reservationID)
	if !ok {
		return nil, nil, shared.ErrReservationNotFound
	}
	if !item.Reservation.Offers(v.Role, reservation.ActionReschedule) {
		return nil, nil, ErrRescheduleNotOffered
	}

	return []reservation.Service{item.Reservation.Service()}, &booking.Reschedule{
		ReservationID: reservationID,
		Status:        item.Reservation.Status(),
		Page:          list.Page,
		PageSize:      list.PageSize,
	}, nil
}

func (u *bookingCommandsImpl) PickService(ctx context.Context, v shared.Viewer, id uuid.UUID, serviceID int64) (*booking.Flow, error) {
	return u.step(ctx, v, id, func(f *booking.Flow) (*booking.Flow, error) {
		return f.PickService(serviceID)
	})
}

func (u *bookingCommandsImpl) NextService(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
	return u.step(ctx, v, id, (*booking.Flow).NextService)
}

func (u *bookingCommandsImpl) PreviousService(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
	return u.step(ctx, v, id, (*booking.Flow).PreviousService)
}

func (u *bookingCommandsImpl) PickHour(ctx context.Context, v shared.Viewer, id uuid.UUID, hour string) (*booking.Flow, error) {
	label, err := reservation.NewHourLabel(hour)
	if err != nil {
		return nil, err
	}
	return u.step(ctx, v, id, func(f *booking.Flow) (*booking.Flow, error) {
		return f.PickHour(matchOffered(f, label))
	})
}

func (u *bookingCommandsImpl) ChangeDay(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
	return u.step(ctx, v, id, (*booking.Flow).ChangeDay)
}

func (u *bookingCommandsImpl) Cancel(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
	return u.step(ctx, v, id, (*booking.Flow).Cancel)
}

func (u *bookingCommandsImpl) Close(ctx context.Context, v shared.Viewer, id uuid.UUID) error {
	if err := u.flows.Delete(ctx, id, v.SessionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, shared.ErrFlowNotFound)
		}
		return errs.Wrap(err, "delete booking flow")
	}
	return nil
}

// PickDay fetches availability for the picked day. A failed fetch leaves the flow on the
// date step. The result is applied under the generation captured before the call, so a
// flow reset or moved on meanwhile rejects it.
func (u *bookingCommandsImpl) PickDay(ctx context.Context, v shared.Viewer, id uuid.UUID, day time.Time) (*booking.Flow, error) {
	f, err := u.load(ctx, v, id)
	if err != nil {
		return nil, err
	}
	_, req, err := f.PickDay(day)
	if err != nil {
		return nil, err
	}

	dayStart := u.slots.In(f.Location()).DayStart(req.Day)
	hours, err := u.gateway.AvailableHours(ctx, v.Tokens, req.ServiceID, dayStart)
	if err != nil {
		return nil, errs.Wrap(err, "fetch available hours")
	}

	next, err := f.ApplyAvailability(req, hours)
	if err != nil {
		return nil, err
	}
	saved, err := u.save(ctx, next)
	if !errs.Is(err, ErrFlowConflict) {
		return saved, err
	}

	// Someone else wrote the flow while the hours were in flight; the generation check
	// decides whether the hours still belong to it.
	latest, err := u.load(ctx, v, id)
	if err != nil {
		return nil, err
	}
	next, err = latest.ApplyAvailability(req, hours)
	if err != nil {
		return nil, err
	}
	return u.save(ctx, next)
}

// Submit creates the reservation, or reschedules the pinned one. The in-flight mark is
// persisted before the upstream call so a concurrent submit of the same flow is refused.
func (u *bookingCommandsImpl) Submit(ctx context.Context, v shared.Viewer, id uuid.UUID) (*SubmitResult, error) {
	f, err := u.load(ctx, v, id)
	if err != nil {
		return nil, err
	}
	pending, sub, err := f.BeginSubmit()
	if err != nil {
		return nil, err
	}
	slot, err := sub.Slot(u.slots.In(f.Location()))
	if err != nil {
		return nil, err
	}
	inFlight, err := u.save(ctx, pending)
	if err != nil {
		return nil, err
	}

	msg, err := u.send(ctx, v, sub, slot)
	// The caller may have gone away; the flow must still leave the in-flight state.
	bg := context.WithoutCancel(ctx)
	if err != nil {
		u.fail(bg, inFlight)
		return nil, errs.Wrap(err, "submit reservation")
	}

	// From here on the marketplace holds the reservation, so flow bookkeeping problems are
	// logged and the submit is reported as successful.
	saved := u.complete(bg, v, inFlight)
	u.publish(bg, submissionEvent(v, sub, slot, u.clock.Now()))
	u.logger.Info("reservation submitted",
		"flow_id", id, "service_id", sub.Service.ID(), "reschedule", sub.IsReschedule(), "state", saved.State().Kind())

	res := &SubmitResult{Flow: saved, Message: msg}
	if sub.IsReschedule() {
		page, err := u.reservations.List(bg, v, sub.Reschedule.Page, sub.Reschedule.PageSize)
		if err != nil {
			u.logger.Warn("failed to refresh reservations after reschedule",
				"flow_id", id, "reservation_id", sub.Reschedule.ReservationID, "error", err)
		}
		res.Reservations = page
	}
	return res, nil
}

// complete records the submitted service on the flow. A version conflict reloads the flow
// and completes the stored copy if it is still waiting on this submit.
func (u *bookingCommandsImpl) complete(ctx context.Context, v shared.Viewer, inFlight *booking.Flow) *booking.Flow {
	done, err := inFlight.CompleteSubmit()
	if err != nil {
		u.logger.Error("failed to complete booking flow", "flow_id", inFlight.ID(), "error", err)
		return inFlight
	}
	saved, err := u.save(ctx, done)
	if err == nil {
		return saved
	}
	if !errs.Is(err, ErrFlowConflict) {
		u.logger.Error("failed to store completed booking flow", "flow_id", inFlight.ID(), "error", err)
		return done
	}

	latest, err := u.load(ctx, v, inFlight.ID())
	if err != nil {
		u.logger.Error("failed to reload booking flow after submit", "flow_id", inFlight.ID(), "error", err)
		return done
	}
	if latest.Generation() != inFlight.Generation() {
		return latest
	}
	done, err = latest.CompleteSubmit()
	if err != nil {
		return latest
	}
	if saved, err = u.save(ctx, done); err != nil {
		u.logger.Error("failed to store completed booking flow", "flow_id", inFlight.ID(), "error", err)
		return done
	}
	return saved
}

func (u *bookingCommandsImpl) send(ctx context.Context, v shared.Viewer, sub booking.Submission, slot reservation.TimeSlot) (string, error) {
	start, end := slot.Start(), slot.End()
	if sub.IsReschedule() {
		return u.gateway.UpdateReservation(ctx, v.Tokens, sub.Reschedule.ReservationID, marketplace.UpdateReservationRequest{
			Status:    reservation.StatusRescheduled.String(),
			StartTime: &start,
			EndTime:   &end,
		})
	}
	return u.gateway.CreateReservation(ctx, v.Tokens, marketplace.CreateReservationRequest{
		ServiceID: sub.Service.ID(),
		StartTime: start,
		EndTime:   end,
	})
}

func (u *bookingCommandsImpl) fail(ctx context.Context, inFlight *booking.Flow) {
	failed, err := inFlight.FailSubmit()
	if err == nil {
		_, err = u.save(ctx, failed)
	}
	if err != nil {
		u.logger.Error("failed to release submitting booking flow", "flow_id", inFlight.ID(), "error", err)
	}
}

func (u *bookingCommandsImpl) step(ctx context.Context, v shared.Viewer, id uuid.UUID, apply func(*booking.Flow) (*booking.Flow, error)) (*booking.Flow, error) {
	f, err := u.load(ctx, v, id)
	if err != nil {
		return nil, err
	}
	next, err := apply(f)
	if err != nil {
		return nil, err
	}
	return u.save(ctx, next)
}

func (u *bookingCommandsImpl) load(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
	f, err := u.flows.Get(ctx, id, v.SessionID, u.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrFlowNotFound)
		}
		return nil, errs.Wrap(err, "load booking flow")
	}
	return f, nil
}

func (u *bookingCommandsImpl) save(ctx context.Context, next *booking.Flow) (*booking.Flow, error) {
	saved, err := u.flows.Update(ctx, next.Touch(u.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrFlowConflict)
		}
		return nil, errs.Wrap(err, "save booking flow")
	}
	return saved, nil
}

func (u *bookingCommandsImpl) publish(ctx context.Context, e events.Event) {
	if err := u.publisher.Publish(ctx, e); err != nil {
		u.logger.Warn("failed to publish booking event", "type", e.Type, "error", err)
	}
}

// matchOffered maps a normalised label such as "09:00" onto the spelling the marketplace
// used, e.g. "9:00", so toggling works regardless of padding.
func matchOffered(f *booking.Flow, label reservation.HourLabel) string {
	var offered []string
	switch s := f.State().(type) {
	case booking.SelectingTime:
		offered = s.Hours
	case booking.Confirming:
		offered = s.Hours
	}
	for _, h := range offered {
		if l, err := reservation.NewHourLabel(h); err == nil && l == label {
			return h
		}
	}
	return label.String()
}

func submissionEvent(v shared.Viewer, sub booking.Submission, slot reservation.TimeSlot, now time.Time) events.Event {
	start, end := slot.Start(), slot.End()
	e := events.Event{
		Type:       events.TypeRequested,
		ServiceID:  sub.Service.ID(),
		UserID:     v.UserID,
		Role:       v.Role.String(),
		Status:     reservation.StatusPending.String(),
		StartTime:  &start,
		EndTime:    &end,
		OccurredAt: now,
	}
	if sub.IsReschedule() {
		e.Type = events.TypeRescheduled
		e.ReservationID = sub.Reschedule.ReservationID
		e.Status = reservation.StatusRescheduled.String()
	}
	return e
}
