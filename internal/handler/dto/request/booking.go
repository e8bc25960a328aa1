package request

import (
	"time"

	"booking-gateway/internal/pkg/patch"
	"booking-gateway/internal/usecase/commands"
)

const dateLayout = time.DateOnly

type StartFlowRequest struct {
	CompanyID int64 `json:"companyId" binding:"required,gt=0"`
	// ServiceIDs empty books the whole catalog of the company.
	ServiceIDs    []int64 `json:"serviceIds" binding:"omitempty,dive,gt=0"`
	ReservationID *int64  `json:"reservationId" binding:"omitempty,gt=0"`
	Page          *int    `json:"page" binding:"omitempty,min=0,max=10000"`
	PageSize      *int    `json:"pageSize" binding:"omitempty,min=1,max=100"`
	Timezone      string  `json:"timezone" binding:"omitempty,timezone"`
}

func (r *StartFlowRequest) ToInput(defaultPageSize int) commands.StartFlowInput {
	return commands.StartFlowInput{
		CompanyID:     r.CompanyID,
		ServiceIDs:    r.ServiceIDs,
		ReservationID: r.ReservationID,
		Page:          patch.Coalesce(r.Page, 0),
		PageSize:      patch.Coalesce(r.PageSize, defaultPageSize),
		Timezone:      r.Timezone,
	}
}

type PickServiceRequest struct {
	ServiceID int64 `json:"serviceId" binding:"required,gt=0"`
}

type PickDayRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// Day returns the calendar date; the flow places it in its own timezone.
func (r *PickDayRequest) Day() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

type PickHourRequest struct {
	Hour string `json:"hour" binding:"required,hourlabel"`
}
