package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys shared by every transport. The notifier reads
// request_id from here before falling back to the payload.
const (
	AttrListingID = "listing_id"
	AttrAction    = "action"
	AttrRequestID = "request_id"
)

// outbound is a moderation event encoded once for whichever transport
// carries it.
type outbound struct {
	key        string
	data       []byte
	attributes map[string]string
	occurredAt time.Time
}

func encodeEvent(event *service.ModerationEvent) (*outbound, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode moderation event")
	}

	attributes := map[string]string{
		AttrListingID: event.ListingID.String(),
		AttrAction:    string(event.Action),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return &outbound{
		key:        event.ListingID.String(),
		data:       data,
		attributes: attributes,
		occurredAt: event.OccurredAt,
	}, nil
}

// sink delivers encoded events. send returns the transport's message id when
// it has one.
type sink interface {
	send(ctx context.Context, msg *outbound) (string, error)
	close() error
}

// eventPublisher implements service.EventPublisher on top of a sink.
type eventPublisher struct {
	transport string
	sink      sink
	logger    *slog.Logger
}

func newEventPublisher(transport string, s sink, logger *slog.Logger) *eventPublisher {
	return &eventPublisher{transport: transport, sink: s, logger: logger}
}

func (p *eventPublisher) PublishModerationEvent(ctx context.Context, event *service.ModerationEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	messageID, err := p.sink.send(ctx, msg)
	if err != nil {
		return errors.Wrapf(err, "publish moderation event via %s", p.transport)
	}

	level := slog.LevelInfo
	if p.transport == constants.PubSubProviderNoop {
		level = slog.LevelDebug
	}
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).LogAttrs(ctx, level, "Moderation event published",
		slog.String("transport", p.transport),
		slog.String("listing_id", msg.key),
		slog.String("action", string(event.Action)),
		slog.String("message_id", messageID),
	)

	return nil
}

func (p *eventPublisher) Close() error {
	return p.sink.close()
}

// noopSink drops events; used when no transport is configured.
type noopSink struct{}

func (noopSink) send(context.Context, *outbound) (string, error) { return "", nil }

func (noopSink) close() error { return nil }
