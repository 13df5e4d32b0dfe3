package impl

import (
	"context"
	"strings"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{deviceRepo: deviceRepo}
}

func (s *deviceService) RegisterDevice(ctx context.Context, ownerID uuid.UUID, reg usecase.DeviceRegistration) (*entity.UserDevice, error) {
	reg.DeviceID = strings.TrimSpace(reg.DeviceID)
	reg.FCMToken = strings.TrimSpace(reg.FCMToken)

	switch {
	case reg.DeviceID == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("device_id is required")
	case reg.FCMToken == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	case !reg.Platform.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}

	device := &entity.UserDevice{
		UserID:   ownerID,
		DeviceID: reg.DeviceID,
		Platform: reg.Platform,
		FCMToken: reg.FCMToken,
	}
	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, ownerID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListActiveByUser(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (s *deviceService) RotateToken(ctx context.Context, ownerID, id uuid.UUID, fcmToken string) (*entity.UserDevice, error) {
	fcmToken = strings.TrimSpace(fcmToken)
	if fcmToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	device, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.UpdateToken(ctx, id, fcmToken); err != nil {
		return nil, errors.Wrap(err, "failed to rotate token")
	}

	device.FCMToken = fcmToken
	device.IsActive = true

	return device, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}

	return errors.Wrap(s.deviceRepo.Deactivate(ctx, id), "failed to deactivate device")
}

func (s *deviceService) owned(ctx context.Context, ownerID, id uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrDeviceNotFound):
		return nil, domainerrors.ErrDeviceNotFound
	case err != nil:
		return nil, errors.Wrap(err, "failed to load device")
	case device.UserID != ownerID:
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}
