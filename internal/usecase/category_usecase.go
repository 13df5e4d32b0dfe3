package usecase

import (
	"context"

	"crimson/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines a new taxonomy entry.
type CreateCategoryInput struct {
	Name  string
	Slug  string
	Group entity.CategoryGroup
}

// CategoryUsecase serves the category taxonomy.
type CategoryUsecase interface {
	// ListCategories returns categories ordered by name, optionally of one group.
	ListCategories(ctx context.Context, group *entity.CategoryGroup) ([]*entity.Category, error)
	GetCategoryBySlug(ctx context.Context, group entity.CategoryGroup, slug string) (*entity.Category, error)

	// CreateCategory is admin-only.
	CreateCategory(ctx context.Context, callerID uuid.UUID, input *CreateCategoryInput) (*entity.Category, error)
}
