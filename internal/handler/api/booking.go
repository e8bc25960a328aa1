package api

import (
	"context"
	"log/slog"
	"net/http"

	"booking-gateway/internal/domain/booking"
	reqdto "booking-gateway/internal/handler/dto/request"
	resdto "booking-gateway/internal/handler/dto/response"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/queries"
	"booking-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	q        queries.BookingQueries
	pageSize int
	errors   errorResponder
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, cfg config.Config, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		cmds:     cmds,
		q:        q,
		pageSize: cfg.Booking.PageSize,
		errors:   newErrorResponder(cfg, logger),
	}
}

type flowStep func(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error)

// @Summary Start booking flow
// @Description Start booking services of a company, or rescheduling a listed reservation when reservationId is set
// @Tags booking-flows
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body reqdto.StartFlowRequest true "Services to book"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-flows [post]
func (h *BookingHandler) Start(c *gin.Context) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, "Booking")
		return
	}
	var req reqdto.StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}

	flow, err := h.cmds.Start(c.Request.Context(), v, req.ToInput(h.pageSize))
	if err != nil {
		h.errors.respond(c, err, "Booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFlow(flow))
}

// @Summary Get booking flow
// @Tags booking-flows
// @Security SessionCookie
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /booking-flows/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	h.run(c, "Booking", h.q.GetFlow)
}

// @Summary Pick service
// @Description Move to another unscheduled service of the flow
// @Tags booking-flows
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.PickServiceRequest true "Service"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-flows/{id}/service [post]
func (h *BookingHandler) PickService(c *gin.Context) {
	var req reqdto.PickServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	h.run(c, "Service selection", func(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
		return h.cmds.PickService(ctx, v, id, req.ServiceID)
	})
}

// @Summary Next service
// @Tags booking-flows
// @Security SessionCookie
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-flows/{id}/service/next [post]
func (h *BookingHandler) NextService(c *gin.Context) {
	h.run(c, "Service selection", h.cmds.NextService)
}

// @Summary Previous service
// @Tags booking-flows
// @Security SessionCookie
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-flows/{id}/service/previous [post]
func (h *BookingHandler) PreviousService(c *gin.Context) {
	h.run(c, "Service selection", h.cmds.PreviousService)
}

// @Summary Pick day
// @Description Pick a date and load its available hours
// @Tags booking-flows
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.PickDayRequest true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /booking-flows/{id}/day [post]
func (h *BookingHandler) PickDay(c *gin.Context) {
	var req reqdto.PickDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	day, err := req.Day()
	if err != nil {
		invalid(c, err, "Invalid date")
		return
	}
	h.run(c, "Day selection", func(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
		return h.cmds.PickDay(ctx, v, id, day)
	})
}

// @Summary Pick hour
// @Description Select an offered hour; picking the selected hour again clears it
// @Tags booking-flows
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.PickHourRequest true "Hour (HH:MM)"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-flows/{id}/hour [post]
func (h *BookingHandler) PickHour(c *gin.Context) {
	var req reqdto.PickHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	h.run(c, "Hour selection", func(ctx context.Context, v shared.Viewer, id uuid.UUID) (*booking.Flow, error) {
		return h.cmds.PickHour(ctx, v, id, req.Hour)
	})
}

// @Summary Change day
// @Tags booking-flows
// @Security SessionCookie
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-flows/{id}/change-day [post]
func (h *BookingHandler) ChangeDay(c *gin.Context) {
	h.run(c, "Day selection", h.cmds.ChangeDay)
}

// @Summary Submit
// @Description Create the reservation for the current service, or apply the reschedule
// @Tags booking-flows
// @Security SessionCookie
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /booking-flows/{id}/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	v, id, ok := h.target(c, "Reservation")
	if !ok {
		return
	}
	res, err := h.cmds.Submit(c.Request.Context(), v, id)
	if err != nil {
		h.errors.respond(c, err, "Reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmit(res))
}

// @Summary Cancel step
// @Description Abandon the current service's date and hour; the flow stays open
// @Tags booking-flows
// @Security SessionCookie
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 409 {object} httperr.Response
// @Router /booking-flows/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.run(c, "Cancel", h.cmds.Cancel)
}

// @Summary Close booking flow
// @Tags booking-flows
// @Security SessionCookie
// @Param id path string true "Flow ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /booking-flows/{id} [delete]
func (h *BookingHandler) Close(c *gin.Context) {
	v, id, ok := h.target(c, "Close")
	if !ok {
		return
	}
	if err := h.cmds.Close(c.Request.Context(), v, id); err != nil {
		h.errors.respond(c, err, "Close")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) run(c *gin.Context, action string, step flowStep) {
	v, id, ok := h.target(c, action)
	if !ok {
		return
	}
	flow, err := step(c.Request.Context(), v, id)
	if err != nil {
		h.errors.respond(c, err, action)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlow(flow))
}

func (h *BookingHandler) target(c *gin.Context, action string) (shared.Viewer, uuid.UUID, bool) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, action)
		return shared.Viewer{}, uuid.Nil, false
	}
	id, err := flowID(c)
	if err != nil {
		invalid(c, err, "Invalid id")
		return shared.Viewer{}, uuid.Nil, false
	}
	return v, id, true
}
