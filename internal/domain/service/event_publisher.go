package service

import (
	"context"

	"crimson/internal/domain/entity"
)

// ModerationEvent is the message sent to the notifier after a moderation action.
type ModerationEvent struct {
	RequestID string `json:"request_id,omitempty"` // for log correlation across services
	entity.ListingModerated
}

// EventPublisher publishes domain events to a message transport.
type EventPublisher interface {
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
