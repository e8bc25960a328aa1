package api

import (
	"log/slog"
	"net/http"

	resdto "booking-gateway/internal/handler/dto/response"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	q      queries.ReferenceQueries
	errors errorResponder
}

func NewReferenceHandler(q queries.ReferenceQueries, cfg config.Config, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{q: q, errors: newErrorResponder(cfg, logger)}
}

// @Summary Countries
// @Tags shared
// @Produce json
// @Success 200 {array} resdto.CountryResponse
// @Failure 502 {object} httperr.Response
// @Router /shared/countries [get]
func (h *ReferenceHandler) Countries(c *gin.Context) {
	countries, err := h.q.Countries(c.Request.Context())
	if err != nil {
		h.errors.respond(c, err, "Countries")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCountries(countries))
}

// @Summary Cities of a country
// @Tags shared
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {array} resdto.CityResponse
// @Failure 502 {object} httperr.Response
// @Router /shared/cities/{country} [get]
func (h *ReferenceHandler) Cities(c *gin.Context) {
	cities, err := h.q.Cities(c.Request.Context(), c.Param("country"))
	if err != nil {
		h.errors.respond(c, err, "Cities")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCities(cities))
}
