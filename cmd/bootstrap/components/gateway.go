package components

import (
	"context"
	"log/slog"

	"booking-gateway/internal/infra/cache"
	"booking-gateway/internal/infra/events"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		// Marketplace API
		fx.Annotate(
			NewMarketplaceClient,
			fx.As(new(shared.AuthGateway)),
			fx.As(new(shared.MarketplaceGateway)),
		),
		// Reference data cache, a no-op without REDIS_ADDR
		fx.Annotate(
			NewReferenceCache,
			fx.As(new(shared.ReferenceCache)),
		),
		// Booking events, a no-op without KAFKA_BROKERS
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewMarketplaceClient(cfg config.Config, logger *slog.Logger) *marketplace.Client {
	return marketplace.NewClient(cfg.Marketplace, logger)
}

func NewReferenceCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *cache.RedisCache {
	c := cache.NewRedisCache(cache.NewRedisClient(cfg.Redis), cfg.Redis, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})
	return c
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *events.KafkaPublisher {
	p := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka), logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
