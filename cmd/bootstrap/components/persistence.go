package components

import (
	"log/slog"

	"booking-gateway/internal/infra/store"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	storeModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var storeModule = fx.Module("persistence/store",
	fx.Provide(
		// Session
		fx.Annotate(
			store.NewSessionStore,
			fx.As(new(commands.SessionRepository)),
		),
		// Booking flow
		fx.Annotate(
			NewFlowStore,
			fx.As(new(commands.FlowRepository)),
			fx.As(new(queries.FlowReader)),
		),
		// Company search position
		fx.Annotate(
			store.NewSearchStateStore,
			fx.As(new(queries.SearchStateRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) store.DBTX {
	return pool
}

func NewFlowStore(db store.DBTX, cfg config.Config, logger *slog.Logger) *store.FlowStore {
	return store.NewFlowStore(db, cfg.Booking.FlowTTL, logger)
}
