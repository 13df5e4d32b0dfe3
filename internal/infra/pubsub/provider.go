package pubsub

import (
	"context"
	"log/slog"

	"crimson/config"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider. An empty
// or missing section means events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	transport := constants.PubSubProviderNoop
	if cfg := params.Config.PubSub; cfg != nil && cfg.Provider != "" {
		transport = cfg.Provider
	}

	s, err := newSink(params.Ctx, transport, params.Config)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Event publisher ready", slog.String("transport", transport))

	publisher := newEventPublisher(transport, s, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newSink(ctx context.Context, transport string, cfg *config.Config) (sink, error) {
	switch transport {
	case constants.PubSubProviderNoop:
		return noopSink{}, nil

	case constants.PubSubProviderLocal:
		if cfg.PubSub.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return newLocalSink(cfg.PubSub.LocalEndpoint), nil

	case constants.PubSubProviderGoogle:
		if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return newGoogleSink(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID)

	case constants.PubSubProviderKafka:
		if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
			return nil, errors.New("kafka.brokers and kafka.topic are required for the kafka provider")
		}

		return &kafkaSink{writer: newKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), topic: cfg.Kafka.Topic}, nil

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", transport)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
