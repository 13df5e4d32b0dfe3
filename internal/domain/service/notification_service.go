package service

import (
	"context"
)

// NotificationService sends push notifications.
type NotificationService interface {
	// SendBatchNotification sends one message to many device tokens. It reports
	// per-token outcome counts and the tokens the provider no longer recognizes.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
