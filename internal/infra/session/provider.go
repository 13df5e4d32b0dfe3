package session

import (
	"context"
	"log/slog"

	"crimson/config"
	"crimson/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the cart session store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCartSessionStore creates the store and runs its sweeper for the app lifetime.
func NewCartSessionStore(params Params) service.CartSessionStore {
	cfg := params.Config.Cart
	store := NewMemoryStore(cfg.SessionTTL, cfg.MaxSessions, params.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.sweepLoop(ctx, cfg.SweepInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return store
}

// Module provides the session FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCartSessionStore),
)
