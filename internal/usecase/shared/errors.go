package shared

import "booking-gateway/internal/pkg/errs"

var (
	ErrFlowNotFound        = errs.New("booking flow not found")
	ErrReservationNotFound = errs.New("reservation not found on the requested page")
)
