package response

import (
	"slices"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/usecase/commands"

	"github.com/google/uuid"
)

type FlowServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Scheduled   bool    `json:"scheduled"`
	Current     bool    `json:"current"`
}

type RescheduleResponse struct {
	ReservationID int64  `json:"reservationId"`
	Status        string `json:"status"`
}

// FlowResponse describes the step the booking flow is on. Day, Hours and Hour are present
// only once a day has been picked.
type FlowResponse struct {
	ID         uuid.UUID             `json:"id"`
	Step       string                `json:"step"`
	Services   []FlowServiceResponse `json:"services"`
	Timezone   string                `json:"timezone"`
	Day        string                `json:"day,omitempty"`
	Hours      []string              `json:"hours,omitempty"`
	Hour       string                `json:"hour,omitempty"`
	Submitting bool                  `json:"submitting"`
	Finished   bool                  `json:"finished"`
	Reschedule *RescheduleResponse   `json:"reschedule,omitempty"`
	Version    int                   `json:"version"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func FromFlow(f *booking.Flow) FlowResponse {
	snap := f.Snapshot()

	services := make([]FlowServiceResponse, 0, len(snap.Services))
	copyInto(&services, &snap.Services)
	for i := range services {
		services[i].Scheduled = slices.Contains(snap.Scheduled, services[i].ID)
		services[i].Current = i == snap.Current
	}

	res := FlowResponse{
		ID:         snap.ID,
		Step:       string(snap.State.Kind),
		Services:   services,
		Timezone:   snap.Timezone,
		Hours:      snap.State.Hours,
		Hour:       snap.State.Hour,
		Submitting: snap.State.Submitting,
		Finished:   f.IsFinished(),
		Version:    snap.Version,
		UpdatedAt:  snap.UpdatedAt,
	}
	if snap.State.Day != nil {
		res.Day = snap.State.Day.Format(time.DateOnly)
	}
	if snap.Reschedule != nil {
		res.Reschedule = &RescheduleResponse{
			ReservationID: snap.Reschedule.ReservationID,
			Status:        snap.Reschedule.Status.String(),
		}
	}
	return res
}

type SubmitResponse struct {
	Flow         FlowResponse             `json:"flow"`
	Message      string                   `json:"message"`
	Reservations *ReservationPageResponse `json:"reservations,omitempty"`
}

func FromSubmit(res *commands.SubmitResult) SubmitResponse {
	out := SubmitResponse{Flow: FromFlow(res.Flow), Message: res.Message}
	if res.Reservations != nil {
		page := FromReservationPage(res.Reservations)
		out.Reservations = &page
	}
	return out
}
