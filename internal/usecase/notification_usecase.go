package usecase

import (
	"context"

	"crimson/internal/domain/service"
)

// NotificationResult summarizes one fan-out.
type NotificationResult struct {
	TotalSent   int
	TotalFailed int
	Deactivated int
}

// NotificationUsecase tells sellers what happened to their listings.
type NotificationUsecase interface {
	// NotifyModeration pushes the outcome of a moderation action to the
	// seller's active devices.
	NotifyModeration(ctx context.Context, event *service.ModerationEvent) (*NotificationResult, error)
}
