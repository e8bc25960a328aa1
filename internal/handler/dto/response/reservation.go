package response

import (
	"time"

	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/usecase/queries"
)

type ReservationResponse struct {
	ID        int64           `json:"id"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Status    string          `json:"status"`
	Service   ServiceResponse `json:"service"`
	Business  *PartyResponse  `json:"business"`
	Customer  *PartyResponse  `json:"customer"`
	Actions   []string        `json:"actions"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ReservationPageResponse struct {
	Items     []ReservationResponse `json:"items"`
	Count     int                   `json:"count"`
	Page      int                   `json:"page"`
	PageSize  int                   `json:"pageSize"`
	PageCount int                   `json:"pageCount"`
}

func FromReservationView(v queries.ReservationView) ReservationResponse {
	r := v.Reservation
	actions := make([]string, 0, len(v.Actions))
	for _, a := range v.Actions {
		actions = append(actions, a.String())
	}
	return ReservationResponse{
		ID:        r.ID(),
		StartTime: r.TimeSlot().Start(),
		EndTime:   r.TimeSlot().End(),
		Status:    r.Status().String(),
		Service:   fromService(r.Service()),
		Business:  fromParty(r.Business()),
		Customer:  fromParty(r.Customer()),
		Actions:   actions,
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func FromReservationPage(p *queries.ReservationPage) ReservationPageResponse {
	items := make([]ReservationResponse, 0, len(p.Items))
	for _, v := range p.Items {
		items = append(items, FromReservationView(v))
	}
	return ReservationPageResponse{
		Items:     items,
		Count:     p.Count,
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
	}
}

func fromService(s reservation.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		Duration:    s.Duration(),
		Price:       s.Price(),
	}
}
