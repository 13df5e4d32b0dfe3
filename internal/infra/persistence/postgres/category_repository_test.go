package postgres

import (
	"context"
	"testing"

	"crimson/internal/domain/entity"
	"crimson/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SeedsDefaultCategoriesOnce(t *testing.T) {
	db := newTestDB(t)

	// A second run must not duplicate the seed.
	require.NoError(t, Migrate(context.Background(), db))

	all, err := NewCategoryRepository(db).List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultCategories))
}

func TestCategoryRepository_ListByGroupOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	group := entity.CategoryGroupService
	categories, err := repo.List(context.Background(), &group)
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		assert.Equal(t, entity.CategoryGroupService, c.Group)
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Design", "Other Services", "Repairs", "Tutoring"}, names)
}

func TestCategoryRepository_SlugUniquePerGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	dup := &entity.Category{Name: "Fiction again", Slug: "fiction", Group: entity.CategoryGroupBook}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicateCategory)

	// The same slug in another group is allowed.
	other := &entity.Category{Name: "Fiction props", Slug: "fiction", Group: entity.CategoryGroupMarketplace}
	require.NoError(t, repo.Create(ctx, other))

	found, err := repo.FindBySlug(ctx, entity.CategoryGroupMarketplace, "fiction")
	require.NoError(t, err)
	assert.Equal(t, other.ID, found.ID)

	byID, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fiction props", byID.Name)

	_, err = repo.FindBySlug(ctx, entity.CategoryGroupRequest, "fiction")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}
