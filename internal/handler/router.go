package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"booking-gateway/internal/handler/api"
	reqdto "booking-gateway/internal/handler/dto/request"
	"booking-gateway/internal/handler/middleware"
	"booking-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Profile     *api.ProfileHandler
	Reference   *api.ReferenceHandler
	Company     *api.CompanyHandler
	Booking     *api.BookingHandler
	Reservation *api.ReservationHandler
	Session     *middleware.SessionMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireSession := h.Session.RequireSession()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword},
				{Method: http.MethodPost, Path: "/resend-verification-email", Handler: h.Auth.ResendVerificationEmail},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireSession)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		shared := apiGroup.Group("/shared")
		addRoutes(shared, []route{
			{Method: http.MethodGet, Path: "/countries", Handler: h.Reference.Countries},
			{Method: http.MethodGet, Path: "/cities/:country", Handler: h.Reference.Cities},
		})

		authed := apiGroup.Group("")
		authed.Use(requireSession)
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Profile.Get},
				{Method: http.MethodGet, Path: "/companies", Handler: h.Company.Search},
				{Method: http.MethodGet, Path: "/companies/:id", Handler: h.Company.GetCompany},
				{Method: http.MethodGet, Path: "/customers/:id", Handler: h.Company.GetCustomer},
				{Method: http.MethodGet, Path: "/services/available-hours", Handler: h.Company.AvailableHours},
			})

			flows := authed.Group("/booking-flows")
			addRoutes(flows, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Close},
				{Method: http.MethodPost, Path: "/:id/service", Handler: h.Booking.PickService},
				{Method: http.MethodPost, Path: "/:id/service/next", Handler: h.Booking.NextService},
				{Method: http.MethodPost, Path: "/:id/service/previous", Handler: h.Booking.PreviousService},
				{Method: http.MethodPost, Path: "/:id/day", Handler: h.Booking.PickDay},
				{Method: http.MethodPost, Path: "/:id/hour", Handler: h.Booking.PickHour},
				{Method: http.MethodPost, Path: "/:id/change-day", Handler: h.Booking.ChangeDay},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Booking.Submit},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})

			reservations := authed.Group("/reservations")
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodPost, Path: "/:id/actions", Handler: h.Reservation.Dispatch},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
