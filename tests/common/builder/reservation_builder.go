//go:build unit || e2e

package builder

import (
	"time"

	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/infra/marketplace"
)

type ReservationBuilder struct {
	ID        int64
	Start     time.Time
	End       time.Time
	Status    reservation.Status
	Service   *ServiceBuilder
	Business  *UserBuilder
	Customer  *UserBuilder
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        42,
		Start:     start,
		End:       start.Add(90 * time.Minute),
		Status:    reservation.StatusPending,
		Service:   NewServiceBuilder(),
		Business:  NewUserBuilder().With(func(b *UserBuilder) { b.ID = 3; b.FirstName = "Barber" }).AsBusiness(),
		Customer:  NewUserBuilder(),
		CreatedAt: start.Add(-48 * time.Hour),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}

func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(r.Start, r.End)
	if err != nil {
		return nil, err
	}
	svc, err := r.Service.BuildDomain()
	if err != nil {
		return nil, err
	}
	business, err := r.Business.BuildDomain()
	if err != nil {
		return nil, err
	}
	customer, err := r.Customer.BuildDomain()
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(r.ID, slot, r.Status, svc, business, customer, r.CreatedAt, r.CreatedAt), nil
}

func (r *ReservationBuilder) MustBuild() *reservation.Reservation {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ReservationBuilder) BuildWire() marketplace.Reservation {
	return marketplace.Reservation{
		ID:        r.ID,
		StartTime: r.Start,
		EndTime:   r.End,
		Status:    r.Status.String(),
		Service:   r.Service.BuildWire(),
		Business:  r.Business.BuildWire(),
		Customer:  r.Customer.BuildWire(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}
