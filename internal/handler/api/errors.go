package api

import (
	"log/slog"
	"net/http"

	"booking-gateway/internal/domain/auth"
	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/handler/httperr"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/cookie"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var (
	errNoSession = errs.New("no session on the request context")

	conflictErrors = []error{
		booking.ErrInvalidTransition,
		booking.ErrSubmitInFlight,
		booking.ErrStaleResult,
		booking.ErrFlowFinished,
		commands.ErrFlowConflict,
		commands.ErrActionNotOffered,
		commands.ErrRescheduleNotOffered,
	}

	invalidInputErrors = []error{
		booking.ErrHourNotOffered,
		booking.ErrUnknownService,
		booking.ErrServiceAlreadyScheduled,
		booking.ErrInvalidTimezone,
		reservation.ErrInvalidHourLabel,
		reservation.ErrInvalidAction,
		reservation.ErrInvalidTimeSlot,
		commands.ErrSlotRequired,
		commands.ErrNothingToBook,
		auth.ErrInvalidCredentials,
		auth.ErrMissingResetToken,
		auth.ErrMissingLocation,
		user.ErrInvalidEmail,
		user.ErrInvalidRole,
		user.ErrPasswordTooWeak,
		user.ErrPasswordMismatch,
		user.ErrEmptyName,
		user.ErrNameTooLong,
	}
)

// errorResponder turns use-case errors into HTTP responses. A 401 always clears the session
// cookie; the session middleware drops the stored session afterwards.
type errorResponder struct {
	cookie config.CookieConfig
	logger *slog.Logger
}

func newErrorResponder(cfg config.Config, logger *slog.Logger) errorResponder {
	return errorResponder{cookie: cfg.Cookie, logger: logger}
}

func (r errorResponder) respond(c *gin.Context, err error, action string) {
	switch {
	case errs.IsAny(err, commands.ErrInvalidCredentials):
		cookie.ClearSessionCookie(c, r.cookie)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)

	case marketplace.IsKind(err, marketplace.KindUnauthorized),
		errs.IsAny(err, commands.ErrSessionNotFound, commands.ErrSessionExpired, errNoSession):
		cookie.ClearSessionCookie(c, r.cookie)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired, please sign in again", nil)

	case errs.IsAny(err, shared.ErrFlowNotFound, shared.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", err.Error())

	case marketplace.IsKind(err, marketplace.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)

	case marketplace.IsKind(err, marketplace.KindRejected):
		apiErr, _ := marketplace.AsAPIError(err)
		status := http.StatusUnprocessableEntity
		if apiErr.Status == http.StatusConflict {
			status = http.StatusConflict
		}
		msg := apiErr.Message
		if msg == "" {
			msg = action + " was rejected"
		}
		var detail any
		if len(apiErr.Errors) > 0 {
			detail = apiErr.Errors
		}
		httperr.AbortWithError(c, status, err, msg, detail)

	case marketplace.IsKind(err, marketplace.KindUpstream),
		marketplace.IsKind(err, marketplace.KindTransport),
		marketplace.IsKind(err, marketplace.KindDecode),
		errs.Is(err, shared.ErrUnexpectedUpstreamData):
		r.logger.Error("marketplace call failed", "action", action, "error", err)
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Marketplace is unavailable, please try again later", nil)

	case errs.IsAny(err, conflictErrors...):
		httperr.AbortWithError(c, http.StatusConflict, err, action+" failed", err.Error())

	case errs.IsAny(err, invalidInputErrors...):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())

	default:
		r.logger.Error("request failed", "action", action, "error", err,
			"stack", errs.ExtractStackLines(err, 5))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// invalid answers 400 for binding and path errors.
func invalid(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
}
