package components

import (
	"booking-gateway/internal/handler"
	"booking-gateway/internal/handler/api"
	"booking-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewReferenceHandler,
		api.NewCompanyHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
