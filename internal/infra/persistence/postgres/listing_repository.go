package postgres

import (
	"context"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const listingSelect = "listings.*, " +
	"profiles.username AS seller_name, " +
	"categories.name AS category_name, " +
	"categories.slug AS category_slug, " +
	"categories.group_name AS category_group"

// listingRow is a listing joined with its seller and category.
type listingRow struct {
	model.ListingModel
	SellerName    *string
	CategoryName  *string
	CategorySlug  *string
	CategoryGroup *string
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("listing references a missing row")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("listing violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Select(listingSelect).
		Joins("LEFT JOIN profiles ON profiles.id = listings.seller_id").
		Joins("LEFT JOIN categories ON categories.id = listings.category_id")
}

func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var rows []*listingRow
	if err := repo.joined(ctx).Where("listings.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listing by ID")
	}
	if len(rows) == 0 {
		return nil, repository.ErrListingNotFound
	}

	return toListingDomain(rows[0]), nil
}

func (repo *listingRepository) List(ctx context.Context, q repository.ListingQuery) ([]*entity.Listing, error) {
	query := repo.joined(ctx)

	if len(q.Statuses) > 0 {
		query = query.Where("listings.status IN ?", stringsOf(q.Statuses))
	}
	if len(q.Types) > 0 {
		query = query.Where("listings.type IN ?", stringsOf(q.Types))
	}
	if q.CategorySlug != "" {
		query = query.Where("categories.slug = ?", q.CategorySlug)
	}
	if q.SellerID != nil {
		query = query.Where("listings.seller_id = ?", *q.SellerID)
	}
	if q.FeaturedOnly {
		query = query.Where("listings.featured = ?", true)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var rows []*listingRow
	if err := query.Order("listings.created_at DESC").Order("listings.id DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, toListingDomain(row))
	}

	return listings, nil
}

// UpdateStatus is a compare-and-set on status so two moderators cannot both
// apply a transition from the same starting state. Leaving approved also
// clears the featured flag in the same statement.
func (repo *listingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error {
	values := map[string]any{"status": string(to)}
	if to != entity.ListingStatusApproved {
		values["featured"] = false
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(values)

	return checkListingUpdate(result, "status")
}

func (repo *listingRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	return repo.updateColumn(repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id),
		"featured", featured)
}

func (repo *listingRepository) SetImageURL(ctx context.Context, id uuid.UUID, imageURL *string) error {
	return repo.updateColumn(repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id),
		"image_url", imageURL)
}

func (repo *listingRepository) updateColumn(scoped *gorm.DB, column string, value any) error {
	return checkListingUpdate(scoped.Update(column, value), column)
}

func checkListingUpdate(result *gorm.DB, column string) error {
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ListingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toListingDomain(row *listingRow) *entity.Listing {
	if row == nil {
		return nil
	}

	listing := &entity.Listing{
		ID:          row.ID,
		SellerID:    row.SellerID,
		CategoryID:  row.CategoryID,
		Type:        entity.ListingType(row.Type),
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price,
		ImageURL:    row.ImageURL,
		Status:      entity.ListingStatus(row.Status),
		Featured:    row.Featured,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		SellerName:  row.SellerName,
	}

	if row.CategoryID != nil && row.CategoryName != nil {
		listing.Category = &entity.Category{
			ID:    *row.CategoryID,
			Name:  *row.CategoryName,
			Slug:  derefString(row.CategorySlug),
			Group: entity.CategoryGroup(derefString(row.CategoryGroup)),
		}
	}

	return listing
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		CategoryID:  data.CategoryID,
		Type:        string(data.Type),
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Status:      string(data.Status),
		Featured:    data.Featured,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}

	return out
}
