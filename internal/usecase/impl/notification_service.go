package impl

import (
	"context"
	"log/slog"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/repository"
	"crimson/internal/domain/service"
	"crimson/internal/usecase"

	"github.com/pkg/errors"
)

// Firebase batch size limit
const firebaseBatchSize = 500

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// NotifyModeration pushes the outcome of a moderation action to the seller's devices.
func (s *notificationService) NotifyModeration(ctx context.Context, event *service.ModerationEvent) (*usecase.NotificationResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.Any("listingID", event.ListingID),
		slog.String("action", string(event.Action)),
	)
	if event.RequestID != "" {
		logger = logger.With(slog.String("origin_request_id", event.RequestID))
	}

	devices, err := s.deviceRepo.ListActiveByUser(ctx, event.SellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch seller devices")
	}

	result := &usecase.NotificationResult{}
	if len(devices) == 0 {
		logger.Debug("Seller has no active devices")

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title, body := moderationMessage(event)
	data := map[string]string{
		"listing_id": event.ListingID.String(),
		"action":     string(event.Action),
		"status":     string(event.Status),
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			// Continue with the other batches
			logger.Error("Failed to send notification batch", slog.Int("size", len(batch)), slog.Any("error", err))
			result.TotalFailed += len(batch)

			continue
		}

		result.TotalSent += successCount
		result.TotalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	for _, token := range invalidTokens {
		n, err := s.deviceRepo.DeactivateByToken(ctx, token)
		if err != nil {
			logger.Warn("Failed to deactivate device with invalid token", slog.Any("error", err))

			continue
		}
		result.Deactivated += int(n)
	}

	logger.Info("Moderation notification sent",
		slog.Int("sent", result.TotalSent),
		slog.Int("failed", result.TotalFailed),
		slog.Int("deactivated", result.Deactivated),
	)

	return result, nil
}

func moderationMessage(event *service.ModerationEvent) (title, body string) {
	quoted := "\"" + event.Title + "\""

	switch event.Action {
	case entity.ModerationApprove:
		return "Listing approved", quoted + " is now live on Crimson."
	case entity.ModerationReject:
		return "Listing rejected", quoted + " was not approved by a moderator."
	case entity.ModerationRestore:
		return "Listing back in review", quoted + " is pending review again."
	case entity.ModerationDelete:
		return "Listing removed", quoted + " was removed by a moderator."
	default:
		return "Listing updated", quoted + " was updated."
	}
}
