package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crimson/config"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.ModerationEvent {
	return &service.ModerationEvent{
		RequestID: "req-1",
		ListingModerated: entity.ListingModerated{
			ListingID:   uuid.New(),
			SellerID:    uuid.New(),
			Title:       "Calculus textbook",
			Action:      entity.ModerationApprove,
			Status:      entity.ListingStatusApproved,
			ModeratorID: uuid.New(),
			OccurredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestEventPublisher_LocalTransport(t *testing.T) {
	event := sampleEvent()

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := newEventPublisher(constants.PubSubProviderLocal, newLocalSink(server.URL), discardLogger())
	require.NoError(t, publisher.PublishModerationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, event.ListingID.String(), received.Message.Attributes[AttrListingID])
	assert.Equal(t, "approve", received.Message.Attributes[AttrAction])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ModerationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.ListingID, decoded.ListingID)
	assert.Equal(t, entity.ListingStatusApproved, decoded.Status)
}

func TestEventPublisher_LocalTransportRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := newEventPublisher(constants.PubSubProviderLocal, newLocalSink(server.URL), discardLogger())
	err := publisher.PublishModerationEvent(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "503")
	assert.ErrorContains(t, err, "via local")
}

func TestEncodeEvent_OmitsEmptyRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	msg, err := encodeEvent(event)

	require.NoError(t, err)
	assert.NotContains(t, msg.attributes, AttrRequestID)
	assert.Equal(t, event.ListingID.String(), msg.key)
}

type fakeKafkaWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeKafkaWriter) Close() error {
	w.closed = true

	return nil
}

func TestEventPublisher_KafkaKeysByListing(t *testing.T) {
	writer := &fakeKafkaWriter{}
	publisher := newEventPublisher(constants.PubSubProviderKafka, &kafkaSink{writer: writer, topic: "listing-moderation"}, discardLogger())
	event := sampleEvent()

	require.NoError(t, publisher.PublishModerationEvent(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.ListingID.String(), string(msg.Key))
	assert.Equal(t, event.OccurredAt, msg.Time)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-1", headers[AttrRequestID])
	assert.Equal(t, "approve", headers[AttrAction])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestEventPublisher_KafkaWriteError(t *testing.T) {
	writer := &fakeKafkaWriter{err: kafka.LeaderNotAvailable}
	publisher := newEventPublisher(constants.PubSubProviderKafka, &kafkaSink{writer: writer, topic: "listing-moderation"}, discardLogger())

	err := publisher.PublishModerationEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "listing-moderation")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		kafka   *config.KafkaConfig
		wantErr string
	}{
		{name: "unconfigured falls back to noop"},
		{name: "explicit noop", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/local/events"}},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "projectId"},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka}, wantErr: "kafka.brokers"},
		{
			name:    "kafka without topic",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderKafka},
			kafka:   &config.KafkaConfig{Brokers: []string{"localhost:9092"}},
			wantErr: "kafka.topic",
		},
		{
			name:   "kafka",
			pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka},
			kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "listing-moderation"},
		},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub, Kafka: tt.kafka}
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: cfg,
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
