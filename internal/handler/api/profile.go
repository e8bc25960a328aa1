package api

import (
	"log/slog"
	"net/http"

	resdto "booking-gateway/internal/handler/dto/response"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	q      queries.ProfileQueries
	errors errorResponder
}

func NewProfileHandler(q queries.ProfileQueries, cfg config.Config, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{q: q, errors: newErrorResponder(cfg, logger)}
}

// @Summary Current profile
// @Tags profile
// @Security SessionCookie
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	v, err := viewer(c)
	if err != nil {
		h.errors.respond(c, err, "Profile")
		return
	}
	profile, err := h.q.Profile(c.Request.Context(), v)
	if err != nil {
		h.errors.respond(c, err, "Profile")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(profile))
}
