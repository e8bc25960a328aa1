package request

import (
	"time"

	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/pkg/patch"
	"booking-gateway/internal/usecase/commands"
)

type ListReservationsRequest struct {
	Page     int `form:"page" binding:"min=0,max=10000"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

type ReservationActionRequest struct {
	Action    string     `json:"action" binding:"required,reservationaction"`
	Page      *int       `json:"page" binding:"omitempty,min=0,max=10000"`
	PageSize  *int       `json:"pageSize" binding:"omitempty,min=1,max=100"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

func (r *ReservationActionRequest) ToInput(reservationID int64) (commands.DispatchInput, error) {
	action, err := reservation.NewAction(r.Action)
	if err != nil {
		return commands.DispatchInput{}, err
	}
	return commands.DispatchInput{
		ReservationID: reservationID,
		Action:        action,
		Page:          patch.Coalesce(r.Page, 0),
		PageSize:      patch.Coalesce(r.PageSize, 0),
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}, nil
}
