package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"crimson/config"
	"crimson/internal/delivery"
	"crimson/internal/delivery/api"
	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/router/handler"
	"crimson/internal/domain/service"
	"crimson/internal/infra/auth"
	"crimson/internal/infra/auth/google"
	"crimson/internal/infra/cache"
	logs "crimson/internal/infra/log"
	"crimson/internal/infra/persistence/postgres"
	"crimson/internal/infra/pubsub"
	"crimson/internal/infra/qrcode"
	"crimson/internal/infra/session"
	"crimson/internal/infra/storage"
	"crimson/internal/usecase"
	"crimson/internal/usecase/impl"

	"go.uber.org/fx"
)

const refreshTokenSweepInterval = time.Hour

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startTokenJanitor,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		storage.Module,
		session.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAuthRepository,
			postgres.NewProfileRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewCategoryRepository,
			postgres.NewListingRepository,
			postgres.NewRequestRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewCategoryService,
			impl.NewListingService,
			impl.NewModerationService,
			impl.NewRequestService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewListingHandler,
			handler.NewAdminHandler,
			handler.NewRequestHandler,
			handler.NewCartHandler,
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

// startTokenJanitor periodically removes expired refresh tokens.
func startTokenJanitor(lc fx.Lifecycle, authUC usecase.AuthUsecase, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(refreshTokenSweepInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						removed, err := authUC.CleanupExpiredSessions(ctx)
						if err != nil {
							logger.Error("Failed to clean up expired sessions", slog.Any("error", err))

							continue
						}
						if removed > 0 {
							logger.Info("Expired sessions removed", slog.Int64("count", removed))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}
