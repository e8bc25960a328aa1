package bootstrap

import (
	"booking-gateway/internal/infra/store"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/jwt"
	"booking-gateway/internal/pkg/sealer"
	"booking-gateway/internal/usecase/commands"

	"go.uber.org/fx"
)

var SecurityModule = fx.Module("security",
	fx.Provide(
		fx.Annotate(
			NewSealer,
			fx.As(new(store.Sealer)),
		),
		fx.Annotate(
			jwt.NewInspector,
			fx.As(new(commands.TokenInspector)),
		),
	),
)

func NewSealer(cfg config.Config) (*sealer.Sealer, error) {
	return sealer.New(cfg.Session.SealingKey)
}
