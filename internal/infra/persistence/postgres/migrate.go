package postgres

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DefaultCategories is the taxonomy a fresh database starts with.
var DefaultCategories = []entity.Category{
	{Name: "Fiction", Slug: "fiction", Group: entity.CategoryGroupBook},
	{Name: "Non-Fiction", Slug: "non-fiction", Group: entity.CategoryGroupBook},
	{Name: "Mystery", Slug: "mystery", Group: entity.CategoryGroupBook},
	{Name: "Romance", Slug: "romance", Group: entity.CategoryGroupBook},
	{Name: "Science Fiction", Slug: "science-fiction", Group: entity.CategoryGroupBook},
	{Name: "Fantasy", Slug: "fantasy", Group: entity.CategoryGroupBook},
	{Name: "Horror", Slug: "horror", Group: entity.CategoryGroupBook},
	{Name: "Biography", Slug: "biography", Group: entity.CategoryGroupBook},
	{Name: "Self-Help", Slug: "self-help", Group: entity.CategoryGroupBook},
	{Name: "Educational", Slug: "educational", Group: entity.CategoryGroupBook},
	{Name: "Electronics", Slug: "electronics", Group: entity.CategoryGroupMarketplace},
	{Name: "Accessories", Slug: "accessories", Group: entity.CategoryGroupMarketplace},
	{Name: "Stationery", Slug: "stationery", Group: entity.CategoryGroupMarketplace},
	{Name: "Tutoring", Slug: "tutoring", Group: entity.CategoryGroupService},
	{Name: "Repairs", Slug: "repairs", Group: entity.CategoryGroupService},
	{Name: "Design", Slug: "design", Group: entity.CategoryGroupService},
	{Name: "Other Services", Slug: "other-services", Group: entity.CategoryGroupService},
	{Name: "Looking for Books", Slug: "looking-for-books", Group: entity.CategoryGroupRequest},
	{Name: "Looking for Items", Slug: "looking-for-items", Group: entity.CategoryGroupRequest},
	{Name: "Looking for Services", Slug: "looking-for-services", Group: entity.CategoryGroupRequest},
	{Name: "Other Requests", Slug: "other-requests", Group: entity.CategoryGroupRequest},
}

// Migrate creates or updates the schema and seeds missing default
// categories. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	for _, category := range DefaultCategories {
		categoryM := model.CategoryModel{
			Name:  category.Name,
			Slug:  category.Slug,
			Group: string(category.Group),
		}
		err := db.WithContext(ctx).
			Where("group_name = ? AND slug = ?", categoryM.Group, categoryM.Slug).
			FirstOrCreate(&categoryM).Error
		if err != nil {
			return errors.Wrapf(err, "seed category %s/%s", category.Group, category.Slug)
		}
	}

	return nil
}
