package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/delivery/worker/handler"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"
	"crimson/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeReader replays msgs and then reports io.EOF, as a closed reader does.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]

	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error { return nil }

type processFunc func(ctx context.Context, event *service.ModerationEvent) error

func (f processFunc) Process(ctx context.Context, event *service.ModerationEvent) error {
	return f(ctx, event)
}

func retryErr() error {
	return handler.NewRetryableError(errors.New("db down"))
}

func eventMessage(t *testing.T, offset int64, headers ...kafka.Header) kafka.Message {
	t.Helper()

	event := service.ModerationEvent{
		ListingModerated: entity.ListingModerated{
			ListingID: uuid.New(),
			SellerID:  uuid.New(),
			Action:    entity.ModerationReject,
		},
	}
	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafka.Message{Offset: offset, Value: value, Headers: headers}
}

func TestKafkaConsumer_Serve(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{
		eventMessage(t, 1, kafka.Header{Key: pubsub.AttrRequestID, Value: []byte("req-1")}),
		{Offset: 2, Value: []byte("not json")},
		eventMessage(t, 3),
	}}

	var requestIDs []string
	processor := processFunc(func(ctx context.Context, event *service.ModerationEvent) error {
		requestIDs = append(requestIDs, deliverycontext.GetRequestIDFromContext(ctx))
		assert.Equal(t, entity.ModerationReject, event.Action)

		return nil
	})

	consumer := newKafkaConsumer(reader, processor, testLogger)
	require.NoError(t, consumer.Serve(context.Background()))

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
	require.Len(t, requestIDs, 2)
	assert.Equal(t, "req-1", requestIDs[0])
	assert.NotEmpty(t, requestIDs[1])
}

func TestKafkaConsumer_RetriesRetryableErrors(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
	}{
		{name: "succeeds after retry", failures: 2, err: retryErr(), wantCalls: 3},
		{name: "gives up after max attempts", failures: 100, err: retryErr(), wantCalls: maxProcessAttempts},
		{name: "permanent error is not retried", failures: 100, err: errors.New("bad event"), wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeReader{msgs: []kafka.Message{eventMessage(t, 7)}}

			calls := 0
			processor := processFunc(func(context.Context, *service.ModerationEvent) error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}

				return nil
			})

			consumer := newKafkaConsumer(reader, processor, testLogger)
			consumer.retryDelay = 0

			require.NoError(t, consumer.Serve(context.Background()))
			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, []int64{7}, reader.committed)
		})
	}
}

func TestHeaderValue(t *testing.T) {
	headers := []kafka.Header{
		{Key: pubsub.AttrListingID, Value: []byte("abc")},
		{Key: pubsub.AttrRequestID, Value: []byte("req")},
	}

	assert.Equal(t, "req", headerValue(headers, pubsub.AttrRequestID))
	assert.Empty(t, headerValue(headers, "missing"))
}
