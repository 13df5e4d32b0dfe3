package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel mirrors the 'profiles' table.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username  *string   `gorm:"type:varchar(19)"`
	AvatarURL *string   `gorm:"type:text"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

func (m *ProfileModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
