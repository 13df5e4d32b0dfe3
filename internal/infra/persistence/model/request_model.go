package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestModel mirrors the 'requests' table.
type RequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description *string   `gorm:"type:text"`
	Category    *string   `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open'"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}

func (m *RequestModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
