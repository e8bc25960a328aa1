package components

import (
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSlotFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionCommands,
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProfileQueries,
		queries.NewReferenceQueries,
		queries.NewCompanyQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewReservationQueries,
	),
)

// NewSlotFactory places hour labels in the configured booking timezone.
func NewSlotFactory(cfg config.Config) (*reservation.SlotFactory, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return reservation.NewSlotFactory(loc), nil
}
