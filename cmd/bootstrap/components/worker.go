package components

import (
	"context"
	"log/slog"

	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewPurger),
	fx.Invoke(startPurger),
)

func NewPurger(sessions commands.SessionCommands, cfg config.Config, logger *slog.Logger) *worker.Purger {
	return worker.NewPurger(sessions, cfg.Session.PurgeInterval, logger)
}

func startPurger(lc fx.Lifecycle, p *worker.Purger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				p.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
