package api

import (
	"context"
	"log/slog"
	"net/http"

	reqdto "booking-gateway/internal/handler/dto/request"
	resdto "booking-gateway/internal/handler/dto/response"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/queries"
	"booking-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	q            queries.CompanyQueries
	availability queries.AvailabilityQueries
	errors       errorResponder
}

func NewCompanyHandler(q queries.CompanyQueries, availability queries.AvailabilityQueries, cfg config.Config, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		q:            q,
		availability: availability,
		errors:       newErrorResponder(cfg, logger),
	}
}

// @Summary Search companies
// @Description Search companies. Changing any filter restarts at page 0; the position is kept per session.
// @Tags companies
// @Security SessionCookie
// @Produce json
// @Param text query string false "Free text"
// @Param city query string false "City"
// @Param country query string false "Country"
// @Param page query int false "Page, 0-based"
// @Success 200 {object} resdto.CompanyPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /companies [get]
func (h *CompanyHandler) Search(c *gin.Context) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, "Company search")
		return
	}
	var req reqdto.SearchCompaniesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalid(c, err, "Invalid query")
		return
	}

	page, err := h.q.Search(c.Request.Context(), v, req.ToInput())
	if err != nil {
		h.errors.respond(c, err, "Company search")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompanyPage(page))
}

// @Summary Get company
// @Tags companies
// @Security SessionCookie
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	h.getUser(c, "Company", h.q.GetCompany)
}

// @Summary Get customer
// @Tags companies
// @Security SessionCookie
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CompanyHandler) GetCustomer(c *gin.Context) {
	h.getUser(c, "Customer", h.q.GetCustomer)
}

// @Summary Available hours
// @Description Start hours offered for a service on a date, in the booking timezone unless overridden
// @Tags services
// @Security SessionCookie
// @Produce json
// @Param serviceId query int true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param timezone query string false "IANA timezone"
// @Success 200 {object} resdto.AvailableHoursResponse
// @Failure 400 {object} httperr.Response
// @Router /services/available-hours [get]
func (h *CompanyHandler) AvailableHours(c *gin.Context) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, "Available hours")
		return
	}
	var req reqdto.AvailableHoursRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalid(c, err, "Invalid query")
		return
	}
	day, err := req.Day()
	if err != nil {
		invalid(c, err, "Invalid date")
		return
	}

	hours, err := h.availability.AvailableHours(c.Request.Context(), v, req.ServiceID, day, req.Timezone)
	if err != nil {
		h.errors.respond(c, err, "Available hours")
		return
	}
	if hours == nil {
		hours = []string{}
	}
	c.JSON(http.StatusOK, resdto.AvailableHoursResponse{Hours: hours})
}

func (h *CompanyHandler) getUser(c *gin.Context, action string, get func(context.Context, shared.Viewer, int64) (marketplace.User, error)) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, action)
		return
	}
	id, err := int64Param(c, "id")
	if err != nil {
		invalid(c, err, "Invalid id")
		return
	}

	u, err := get(c.Request.Context(), v, id)
	if err != nil {
		h.errors.respond(c, err, action)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}
