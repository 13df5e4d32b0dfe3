package postgres

import (
	"context"
	"time"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

var deviceUpsertColumns = []string{"platform", "fcm_token", "is_active", "updated_at"}

func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	row := &model.UserDeviceModel{
		UserID:   device.UserID,
		DeviceID: device.DeviceID,
		Platform: string(device.Platform),
		FCMToken: device.FCMToken,
		IsActive: true,
	}

	tx := repo.db.WithContext(ctx)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns(deviceUpsertColumns),
	}).Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// On conflict the generated id is discarded, so read back the stored row.
	var stored model.UserDeviceModel
	if err := tx.Where("user_id = ? AND device_id = ?", device.UserID, device.DeviceID).
		Take(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload device")
	}

	*device = *toDeviceEntity(&stored)

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrDeviceNotFound
	case err != nil:
		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceEntity(&row), nil
}

func (repo *deviceRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var rows []model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active", userID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i := range rows {
		devices[i] = toDeviceEntity(&rows[i])
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	return repo.updateOne(ctx, id, map[string]any{
		"fcm_token":  fcmToken,
		"is_active":  true,
		"updated_at": time.Now(),
	})
}

func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return repo.updateOne(ctx, id, map[string]any{
		"is_active":  false,
		"updated_at": time.Now(),
	})
}

func (repo *deviceRepository) DeactivateByToken(ctx context.Context, fcmToken string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token = ? AND is_active", fcmToken).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by token")
	}

	return result.RowsAffected, nil
}

func (repo *deviceRepository) updateOne(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update device %s", id)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceEntity(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		DeviceID:  row.DeviceID,
		Platform:  entity.Platform(row.Platform),
		FCMToken:  row.FCMToken,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
