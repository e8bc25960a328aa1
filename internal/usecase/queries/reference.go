package queries

import (
	"context"
	"log/slog"
	"strings"

	"booking-gateway/internal/infra/cache"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"
)

type ReferenceQueries interface {
	Countries(ctx context.Context) ([]marketplace.Country, error)
	Cities(ctx context.Context, country string) ([]marketplace.City, error)
}

type referenceQueriesImpl struct {
	gateway shared.MarketplaceGateway
	cache   shared.ReferenceCache
	logger  *slog.Logger
}

func NewReferenceQueries(gateway shared.MarketplaceGateway, cache shared.ReferenceCache, logger *slog.Logger) ReferenceQueries {
	return &referenceQueriesImpl{gateway: gateway, cache: cache, logger: logger}
}

func (q *referenceQueriesImpl) Countries(ctx context.Context) ([]marketplace.Country, error) {
	return cached(ctx, q, cache.Key("countries"), func() ([]marketplace.Country, error) {
		countries, err := q.gateway.Countries(ctx)
		return countries, errs.Wrap(err, "list countries")
	})
}

// Cities caches per country exactly as the marketplace is asked for it, so a spelling the
// marketplace treats differently never shares an entry.
func (q *referenceQueriesImpl) Cities(ctx context.Context, country string) ([]marketplace.City, error) {
	country = strings.Join(strings.Fields(country), " ")
	return cached(ctx, q, cache.Key("cities", country), func() ([]marketplace.City, error) {
		cities, err := q.gateway.Cities(ctx, country)
		return cities, errs.Wrap(err, "list cities")
	})
}

// cached serves from the cache when possible. Cache failures degrade to an upstream call.
func cached[T any](ctx context.Context, q *referenceQueriesImpl, key string, load func() ([]T, error)) ([]T, error) {
	var hit []T
	found, err := q.cache.Get(ctx, key, &hit)
	if err != nil {
		q.logger.Warn("reference cache read failed", "key", key, "error", err)
	}
	if found {
		return hit, nil
	}

	fresh, err := load()
	if err != nil {
		return nil, err
	}
	if err := q.cache.Set(ctx, key, fresh); err != nil {
		q.logger.Warn("reference cache write failed", "key", key, "error", err)
	}
	return fresh, nil
}
