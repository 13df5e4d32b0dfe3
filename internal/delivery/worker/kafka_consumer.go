package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"crimson/config"
	"crimson/internal/delivery"
	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/delivery/worker/handler"
	"crimson/internal/domain/service"
	"crimson/internal/infra/pubsub"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultConsumerGroup = "crimson-notifier"
	maxProcessAttempts   = 5
	initialRetryDelay    = 500 * time.Millisecond
	maxRetryDelay        = 10 * time.Second
)

// kafkaReader is the subset of *kafka.Reader the consumer needs.
type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type eventProcessor interface {
	Process(ctx context.Context, event *service.ModerationEvent) error
}

type kafkaConsumer struct {
	reader     kafkaReader
	processor  eventProcessor
	logger     *slog.Logger
	retryDelay time.Duration
}

// ConsumerParams holds dependencies for the kafka consumer
type ConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewKafkaConsumer reads moderation events from the kafka topic. Offsets are
// committed only after an event has been handled or given up on.
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Kafka
	if cfg == nil || len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required for the consumer")
	}

	groupID := cfg.GroupID
	if groupID == "" {
		groupID = defaultConsumerGroup
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	consumer := newKafkaConsumer(reader, params.PushHandler, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return consumer.close()
		},
	})

	return consumer, nil
}

func newKafkaConsumer(reader kafkaReader, processor eventProcessor, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:     reader,
		processor:  processor,
		logger:     logger,
		retryDelay: initialRetryDelay,
	}
}

// Serve consumes until ctx is cancelled or the reader is closed.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	c.logger.Info("Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrap(err, "fetch kafka message")
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "commit kafka message")
		}
	}
}

func (c *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var event service.ModerationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("[Kafka] Dropping undecodable message",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := handler.ResolveRequestID(ctx, headerValue(msg.Headers, pubsub.AttrRequestID), &event)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, c.logger.With(slog.String("request_id", requestID)))

	delay := c.retryDelay
	for attempt := 1; ; attempt++ {
		err := c.processor.Process(ctx, &event)
		if err == nil || !handler.IsRetryable(err) {
			return
		}

		if attempt >= maxProcessAttempts {
			c.logger.Error("[Kafka] Giving up on moderation event",
				slog.String("listing_id", event.ListingID.String()),
				slog.Int("attempts", attempt),
				slog.Any("error", err),
			)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		delay = min(delay*2, maxRetryDelay)
	}
}

func (c *kafkaConsumer) close() error {
	c.logger.Info("Closing Kafka consumer")

	return errors.WithStack(c.reader.Close())
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}
