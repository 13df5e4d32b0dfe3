package usecase

import (
	"context"

	"crimson/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a client sends when it wants pushes.
type DeviceRegistration struct {
	DeviceID string
	Platform entity.Platform
	FCMToken string
}

// DeviceUsecase manages the devices that receive moderation notifications.
// Every operation is scoped to ownerID; other users' devices look missing.
type DeviceUsecase interface {
	// RegisterDevice creates the device or, if ownerID already registered
	// the same DeviceID, refreshes its token and reactivates it.
	RegisterDevice(ctx context.Context, ownerID uuid.UUID, reg DeviceRegistration) (*entity.UserDevice, error)
	ListDevices(ctx context.Context, ownerID uuid.UUID) ([]*entity.UserDevice, error)
	RotateToken(ctx context.Context, ownerID, id uuid.UUID, fcmToken string) (*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, ownerID, id uuid.UUID) error
}
