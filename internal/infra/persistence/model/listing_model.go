package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListingModel mirrors the 'listings' table.
type ListingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Type        string          `gorm:"type:varchar(20);not null;index"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:chk_listings_price,price >= 0"`
	ImageURL    *string         `gorm:"type:text"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Featured    bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

func (m *ListingModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
