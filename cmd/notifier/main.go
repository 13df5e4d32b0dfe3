package main

import (
	"context"
	"log/slog"
	"os"

	"crimson/config"
	"crimson/internal/delivery"
	"crimson/internal/delivery/worker"
	"crimson/internal/delivery/worker/handler"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/service"
	logs "crimson/internal/infra/log"
	"crimson/internal/infra/notification"
	"crimson/internal/infra/persistence/postgres"
	"crimson/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
		),
	)
}

// newFirebaseService creates the FCM client from the firebase config section.
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase config is required by the notifier")
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			newConsumers,
		),
	)
}

type consumersResult struct {
	fx.Out

	Deliveries []delivery.Delivery `group:"deliveries,flatten"`
}

// newConsumers adds the kafka consumer when events are published to kafka.
// Pub/Sub and local events arrive over HTTP instead.
func newConsumers(params worker.ConsumerParams) (consumersResult, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderKafka {
		return consumersResult{}, nil
	}

	consumer, err := worker.NewKafkaConsumer(params)
	if err != nil {
		return consumersResult{}, err
	}

	return consumersResult{Deliveries: []delivery.Delivery{consumer}}, nil
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
