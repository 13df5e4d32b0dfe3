package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table. "group" is reserved in SQL,
// hence the group_name column.
type CategoryModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(100);not null"`
	Slug  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_group_slug"`
	Group string    `gorm:"column:group_name;type:varchar(20);not null;uniqueIndex:idx_categories_group_slug"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
