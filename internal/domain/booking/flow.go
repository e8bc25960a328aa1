package booking

import (
	"errors"
	"slices"
	"time"

	"booking-gateway/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition       = errors.New("operation not allowed in the current booking step")
	ErrUnknownService          = errors.New("service is not part of this booking")
	ErrServiceAlreadyScheduled = errors.New("service has already been scheduled")
	ErrHourNotOffered          = errors.New("hour is not among the available hours")
	ErrSubmitInFlight          = errors.New("a submission for this booking is already in progress")
	ErrStaleResult             = errors.New("result belongs to a booking step that no longer exists")
	ErrFlowFinished            = errors.New("booking flow already submitted")
	ErrInvalidTimezone         = errors.New("invalid timezone")
)

// Reschedule pins a flow to an existing reservation. Its service is fixed and a successful
// submit ends the flow.
type Reschedule struct {
	ReservationID int64
	Status        reservation.Status
	// Page and PageSize locate the reservation list the reschedule was started from; it is
	// re-fetched once the reschedule succeeds.
	Page     int
	PageSize int
}

// AvailabilityRequest is handed out by PickDay and must be presented back, with the fetched
// hours, to ApplyAvailability.
type AvailabilityRequest struct {
	ServiceID  int64
	Day        time.Time
	Generation int
}

// Submission is what BeginSubmit hands to the caller to build the create/update request.
type Submission struct {
	Service    reservation.Service
	Day        time.Time
	Hour       string
	Reschedule *Reschedule
}

// Flow is immutable; every operation returns a new flow or an error and leaves the receiver
// untouched, so a failed step never partially applies.
type Flow struct {
	id         uuid.UUID
	sessionID  uuid.UUID
	services   []reservation.Service
	scheduled  []int64
	current    int
	reschedule *Reschedule
	timezone   string
	state      State
	generation int
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

func Start(sessionID uuid.UUID, services []reservation.Service, reschedule *Reschedule, timezone string, now time.Time) (*Flow, error) {
	if _, err := loadLocation(timezone); err != nil {
		return nil, err
	}
	if len(services) == 0 || (reschedule != nil && len(services) != 1) {
		return nil, ErrInvalidTransition
	}

	f := &Flow{
		id:         uuid.New(),
		sessionID:  sessionID,
		services:   slices.Clone(services),
		reschedule: reschedule,
		timezone:   timezone,
		createdAt:  now,
		updatedAt:  now,
	}
	f.state = f.initialState()
	return f, nil
}

func (f *Flow) initialState() State {
	if f.isPinned() {
		return SelectingDate{}
	}
	return SelectingService{}
}

// A single service or a reschedule fixes the service, so there is nothing to pick.
func (f *Flow) isPinned() bool {
	return f.reschedule != nil || len(f.services) == 1
}

func (f *Flow) PickService(serviceID int64) (*Flow, error) {
	if err := f.requireKind(KindSelectingService, KindSelectingDate); err != nil {
		return nil, err
	}
	idx := f.indexOf(serviceID)
	if idx < 0 {
		return nil, ErrUnknownService
	}
	if f.isScheduled(serviceID) {
		return nil, ErrServiceAlreadyScheduled
	}

	next := f.clone()
	next.current = idx
	next.state = SelectingDate{}
	return next, nil
}

// NextService and PreviousService move the highlighted service without changing the step.
func (f *Flow) NextService() (*Flow, error) {
	return f.cycle(1)
}

func (f *Flow) PreviousService() (*Flow, error) {
	return f.cycle(-1)
}

func (f *Flow) cycle(step int) (*Flow, error) {
	if err := f.requireKind(KindSelectingService, KindSelectingDate); err != nil {
		return nil, err
	}
	if f.reschedule != nil || len(f.services) < 2 {
		return nil, ErrInvalidTransition
	}

	n := len(f.services)
	for i := 1; i <= n; i++ {
		idx := ((f.current+step*i)%n + n) % n
		if !f.isScheduled(f.services[idx].ID()) {
			next := f.clone()
			next.current = idx
			return next, nil
		}
	}
	return nil, ErrServiceAlreadyScheduled
}

func (f *Flow) PickDay(day time.Time) (*Flow, AvailabilityRequest, error) {
	if err := f.requireKind(KindSelectingDate); err != nil {
		return nil, AvailabilityRequest{}, err
	}
	service, ok := f.CurrentService()
	if !ok {
		return nil, AvailabilityRequest{}, ErrUnknownService
	}

	req := AvailabilityRequest{
		ServiceID:  service.ID(),
		Day:        truncateDay(day),
		Generation: f.generation,
	}
	return f.clone(), req, nil
}

// ApplyAvailability completes PickDay. It refuses results for a flow that was reset, moved
// to another service or already left the date step since the request was issued.
func (f *Flow) ApplyAvailability(req AvailabilityRequest, hours []string) (*Flow, error) {
	if req.Generation != f.generation {
		return nil, ErrStaleResult
	}
	if _, ok := f.state.(SelectingDate); !ok {
		return nil, ErrStaleResult
	}
	service, ok := f.CurrentService()
	if !ok || service.ID() != req.ServiceID {
		return nil, ErrStaleResult
	}

	next := f.clone()
	next.state = SelectingTime{Day: req.Day, Hours: slices.Clone(hours)}
	return next, nil
}

// PickHour selects an hour; picking the already selected hour deselects it.
func (f *Flow) PickHour(hour string) (*Flow, error) {
	next := f.clone()
	switch s := f.state.(type) {
	case SelectingTime:
		if !s.offers(hour) {
			return nil, ErrHourNotOffered
		}
		next.state = Confirming{Day: s.Day, Hours: s.Hours, Hour: hour}
	case Confirming:
		if s.Submitting {
			return nil, ErrSubmitInFlight
		}
		if hour == s.Hour {
			next.state = SelectingTime{Day: s.Day, Hours: s.Hours}
			break
		}
		if !s.offers(hour) {
			return nil, ErrHourNotOffered
		}
		next.state = Confirming{Day: s.Day, Hours: s.Hours, Hour: hour}
	case Submitted:
		return nil, ErrFlowFinished
	default:
		return nil, ErrInvalidTransition
	}
	return next, nil
}

func (f *Flow) ChangeDay() (*Flow, error) {
	switch s := f.state.(type) {
	case SelectingTime:
	case Confirming:
		if s.Submitting {
			return nil, ErrSubmitInFlight
		}
	case Submitted:
		return nil, ErrFlowFinished
	default:
		return nil, ErrInvalidTransition
	}

	next := f.clone()
	next.state = SelectingDate{}
	return next, nil
}

func (f *Flow) BeginSubmit() (*Flow, Submission, error) {
	s, ok := f.state.(Confirming)
	if !ok {
		if f.state.Kind() == KindSubmitted {
			return nil, Submission{}, ErrFlowFinished
		}
		return nil, Submission{}, ErrInvalidTransition
	}
	if s.Submitting {
		return nil, Submission{}, ErrSubmitInFlight
	}
	service, ok := f.CurrentService()
	if !ok {
		return nil, Submission{}, ErrUnknownService
	}

	next := f.clone()
	s.Submitting = true
	next.state = s

	sub := Submission{
		Service:    service,
		Day:        s.Day,
		Hour:       s.Hour,
		Reschedule: f.reschedule,
	}
	return next, sub, nil
}

// CompleteSubmit records the current service as booked. Multi-service bookings continue
// with the next unscheduled service; otherwise the flow ends.
func (f *Flow) CompleteSubmit() (*Flow, error) {
	s, ok := f.state.(Confirming)
	if !ok || !s.Submitting {
		return nil, ErrInvalidTransition
	}
	service, _ := f.CurrentService()

	next := f.clone()
	next.scheduled = append(next.scheduled, service.ID())

	if f.reschedule != nil {
		next.state = Submitted{}
		return next, nil
	}
	idx, ok := next.nextUnscheduled()
	if !ok {
		next.state = Submitted{}
		return next, nil
	}
	next.current = idx
	next.state = SelectingDate{}
	return next, nil
}

// FailSubmit keeps the selected day and hour so the user can resubmit immediately.
func (f *Flow) FailSubmit() (*Flow, error) {
	s, ok := f.state.(Confirming)
	if !ok || !s.Submitting {
		return nil, ErrInvalidTransition
	}

	next := f.clone()
	s.Submitting = false
	next.state = s
	return next, nil
}

// Cancel drops every local selection. Bumping the generation makes results of requests
// issued before the reset inapplicable.
func (f *Flow) Cancel() (*Flow, error) {
	switch s := f.state.(type) {
	case Submitted:
		return nil, ErrFlowFinished
	case Confirming:
		if s.Submitting {
			return nil, ErrSubmitInFlight
		}
	}

	next := f.clone()
	next.generation++
	if svc, ok := next.CurrentService(); !ok || next.isScheduled(svc.ID()) {
		if idx, ok := next.nextUnscheduled(); ok {
			next.current = idx
		}
	}
	next.state = next.initialState()
	return next, nil
}

func (f *Flow) Touch(now time.Time) *Flow {
	next := f.clone()
	next.updatedAt = now
	return next
}

func (f *Flow) CurrentService() (reservation.Service, bool) {
	if f.current < 0 || f.current >= len(f.services) {
		return reservation.Service{}, false
	}
	return f.services[f.current], true
}

func (f *Flow) Location() *time.Location {
	loc, err := loadLocation(f.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (f *Flow) IsFinished() bool {
	return f.state.Kind() == KindSubmitted
}

func (f *Flow) ID() uuid.UUID                   { return f.id }
func (f *Flow) SessionID() uuid.UUID            { return f.sessionID }
func (f *Flow) Services() []reservation.Service { return slices.Clone(f.services) }
func (f *Flow) Scheduled() []int64              { return slices.Clone(f.scheduled) }
func (f *Flow) CurrentIndex() int               { return f.current }
func (f *Flow) Reschedule() *Reschedule         { return f.reschedule }
func (f *Flow) Timezone() string                { return f.timezone }
func (f *Flow) State() State                    { return f.state }
func (f *Flow) Generation() int                 { return f.generation }
func (f *Flow) Version() int                    { return f.version }
func (f *Flow) CreatedAt() time.Time            { return f.createdAt }
func (f *Flow) UpdatedAt() time.Time            { return f.updatedAt }

func (f *Flow) requireKind(kinds ...StateKind) error {
	if f.state.Kind() == KindSubmitted {
		return ErrFlowFinished
	}
	if !slices.Contains(kinds, f.state.Kind()) {
		return ErrInvalidTransition
	}
	return nil
}

func (f *Flow) indexOf(serviceID int64) int {
	return slices.IndexFunc(f.services, func(s reservation.Service) bool {
		return s.ID() == serviceID
	})
}

func (f *Flow) isScheduled(serviceID int64) bool {
	return slices.Contains(f.scheduled, serviceID)
}

func (f *Flow) nextUnscheduled() (int, bool) {
	n := len(f.services)
	for i := 1; i <= n; i++ {
		idx := (f.current + i) % n
		if !f.isScheduled(f.services[idx].ID()) {
			return idx, true
		}
	}
	return 0, false
}

func (f *Flow) clone() *Flow {
	c := *f
	c.services = slices.Clone(f.services)
	c.scheduled = slices.Clone(f.scheduled)
	return &c
}

func truncateDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// Slot computes the absolute start and end of the submitted booking.
func (s Submission) Slot(factory *reservation.SlotFactory) (reservation.TimeSlot, error) {
	return factory.Slot(s.Hour, s.Day, s.Service)
}

func (s Submission) IsReschedule() bool {
	return s.Reschedule != nil
}
