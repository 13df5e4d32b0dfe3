package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel mirrors the 'user_devices' table. (user_id, device_id) is
// the upsert key.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_owner_device"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_owner_device"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	FCMToken  string    `gorm:"type:varchar(512);not null;index"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}

func (m *UserDeviceModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
