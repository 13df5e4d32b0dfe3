package repository

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when the slug is already used in the group.
	ErrDuplicateCategory = errors.New("category slug already exists in group")
)

// CategoryRepository reads and administers the taxonomy.
type CategoryRepository interface {
	// List returns categories ordered by name. A nil group returns every group.
	List(ctx context.Context, group *entity.CategoryGroup) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, group entity.CategoryGroup, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
}
