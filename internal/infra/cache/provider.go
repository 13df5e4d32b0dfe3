package cache

import (
	"context"
	"log/slog"

	"crimson/config"
	"crimson/internal/domain/lifecycle"
	"crimson/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the listing cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewListingCache connects to Redis, or returns a cache that never hits when
// Redis is not configured.
func NewListingCache(params Params) service.ListingCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, listing cache disabled")

		return noopListingCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.StartupTimeout)
			defer cancel()
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisListingCache(client, params.Logger)
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewListingCache),
)
