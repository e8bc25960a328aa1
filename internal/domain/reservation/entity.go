package reservation

import (
	"errors"
	"strings"
	"time"

	"booking-gateway/internal/domain/user"
)

var (
	ErrInvalidTimeSlot  = errors.New("invalid time slot")
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrInvalidAction    = errors.New("invalid reservation action")
	ErrInvalidHourLabel = errors.New("invalid hour label, expected HH:MM")
	ErrEmptyServiceName = errors.New("service name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Service is immutable from the gateway's perspective; only its owning business edits it.
type Service struct {
	id          int64
	name        string
	description string
	duration    string
	price       float64
	ownerID     int64
}

func NewService(id int64, name, description, duration string, price float64, ownerID int64) (Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Service{}, ErrEmptyServiceName
	}
	if price < 0 {
		return Service{}, ErrNegativePrice
	}

	return Service{
		id:          id,
		name:        name,
		description: description,
		duration:    duration,
		price:       price,
		ownerID:     ownerID,
	}, nil
}

func (s Service) Minutes() int { return ParseDuration(s.duration) }

func (s Service) ID() int64           { return s.id }
func (s Service) Name() string        { return s.name }
func (s Service) Description() string { return s.description }
func (s Service) Duration() string    { return s.duration }
func (s Service) Price() float64      { return s.price }
func (s Service) OwnerID() int64      { return s.ownerID }

type Reservation struct {
	id        int64
	timeSlot  TimeSlot
	status    Status
	service   Service
	business  *user.User
	customer  *user.User
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructReservation(
	id int64,
	timeSlot TimeSlot,
	status Status,
	service Service,
	business, customer *user.User,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		timeSlot:  timeSlot,
		status:    status,
		service:   service,
		business:  business,
		customer:  customer,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) OfferedActions(role user.Role) []Action {
	return OfferedActions(r.status, role)
}

func (r *Reservation) Offers(role user.Role, action Action) bool {
	return IsOffered(r.status, role, action)
}

// Counterpart is the party shown to the viewer: the customer for a business, the business
// for a customer.
func (r *Reservation) Counterpart(viewer user.Role) *user.User {
	if viewer == user.RoleBusiness {
		return r.customer
	}
	return r.business
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Service() Service     { return r.service }
func (r *Reservation) Business() *user.User { return r.business }
func (r *Reservation) Customer() *user.User { return r.customer }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
