package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"booking-gateway/internal/infra"
	"booking-gateway/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking-gateway:ref:"

// RedisCache stores reference data (countries, cities) as JSON with a fixed TTL. A nil
// client turns every lookup into a miss and every write into a no-op.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisCache(client *redis.Client, cfg config.RedisConfig, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: cfg.TTL, logger: logger}
}

func Key(parts ...string) string {
	k := keyPrefix
	for i, p := range parts {
		if i > 0 {
			k += ":"
		}
		k += p
	}
	return k
}

// Get decodes the cached value into dst and reports whether it was present.
func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.client == nil {
		return false, nil
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, infra.WrapRepoErr(c.logger, infra.KindCache, "failed to read cache", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, infra.WrapRepoErr(c.logger, infra.KindCorrupt, "failed to decode cached value", err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	if c.client == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindCorrupt, "failed to encode cache value", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindCache, "failed to write cache", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
