package api

import (
	"log/slog"
	"net/http"

	reqdto "booking-gateway/internal/handler/dto/request"
	resdto "booking-gateway/internal/handler/dto/response"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds   commands.ReservationCommands
	q      queries.ReservationQueries
	errors errorResponder
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, cfg config.Config, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		cmds:   cmds,
		q:      q,
		errors: newErrorResponder(cfg, logger),
	}
}

// @Summary List reservations
// @Description Reservations of the viewer, each with the actions the viewer may take
// @Tags reservations
// @Security SessionCookie
// @Produce json
// @Param page query int false "Page, 0-based"
// @Param pageSize query int false "Page size"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, "Reservations")
		return
	}
	var req reqdto.ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalid(c, err, "Invalid query")
		return
	}

	page, err := h.q.List(c.Request.Context(), v, req.Page, req.PageSize)
	if err != nil {
		h.errors.respond(c, err, "Reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationPage(page))
}

// @Summary Reservation action
// @Description Confirm, cancel, complete, mark no-show or reschedule a reservation listed on page. Returns the re-fetched page.
// @Tags reservations
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ReservationActionRequest true "Action"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/actions [post]
func (h *ReservationHandler) Dispatch(c *gin.Context) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, "Reservation update")
		return
	}
	id, err := int64Param(c, "id")
	if err != nil {
		invalid(c, err, "Invalid id")
		return
	}
	var req reqdto.ReservationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput(id)
	if err != nil {
		invalid(c, err, "Invalid action")
		return
	}

	page, err := h.cmds.Dispatch(c.Request.Context(), v, in)
	if err != nil {
		h.errors.respond(c, err, "Reservation update")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationPage(page))
}
