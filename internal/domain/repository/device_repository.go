package repository

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when no device has the given id.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists the devices that receive push notifications.
type DeviceRepository interface {
	// Upsert stores device under (UserID, DeviceID). A known device gets the
	// new token and platform and is reactivated. device is refreshed from the
	// stored row.
	Upsert(ctx context.Context, device *entity.UserDevice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateToken replaces the token and reactivates the device.
	UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByToken switches off every device holding fcmToken, e.g. after
	// FCM reports it unregistered, and returns how many were active.
	DeactivateByToken(ctx context.Context, fcmToken string) (int64, error)
}
