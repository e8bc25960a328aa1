package queries

import (
	"context"

	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/domain/search"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"
)

// ReservationView pairs a reservation with the actions the viewer may take on it.
type ReservationView struct {
	Reservation *reservation.Reservation
	Actions     []reservation.Action
}

type ReservationPage struct {
	Items     []ReservationView
	Count     int
	Page      int
	PageSize  int
	PageCount int
}

// Find returns the reservation with id if it is on this page.
func (p *ReservationPage) Find(id int64) (ReservationView, bool) {
	for _, item := range p.Items {
		if item.Reservation.ID() == id {
			return item, true
		}
	}
	return ReservationView{}, false
}

type ReservationQueries interface {
	List(ctx context.Context, v shared.Viewer, page, pageSize int) (*ReservationPage, error)
}

type reservationQueriesImpl struct {
	gateway         shared.MarketplaceGateway
	defaultPageSize int
}

func NewReservationQueries(gateway shared.MarketplaceGateway, cfg config.Config) ReservationQueries {
	return &reservationQueriesImpl{
		gateway:         gateway,
		defaultPageSize: cfg.Booking.PageSize,
	}
}

func (q *reservationQueriesImpl) List(ctx context.Context, v shared.Viewer, page, pageSize int) (*ReservationPage, error) {
	if pageSize <= 0 {
		pageSize = q.defaultPageSize
	}
	if pageSize <= 0 {
		pageSize = search.DefaultPageSize
	}
	pageSize = min(pageSize, search.MaxPageSize)
	page = search.ClampPage(page)

	res, err := q.gateway.ListReservations(ctx, v.Tokens, pageSize, page*pageSize)
	if err != nil {
		return nil, errs.Wrap(err, "list reservations")
	}

	items := make([]ReservationView, 0, len(res.Items))
	for _, r := range res.Items {
		domain, err := shared.ToReservation(r)
		if err != nil {
			return nil, err
		}
		items = append(items, ReservationView{
			Reservation: domain,
			Actions:     domain.OfferedActions(v.Role),
		})
	}

	return &ReservationPage{
		Items:     items,
		Count:     res.Count,
		Page:      page,
		PageSize:  pageSize,
		PageCount: search.PageCount(res.Count, pageSize),
	}, nil
}
