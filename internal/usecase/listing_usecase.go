package usecase

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultFeaturedLimit is used when a featured query does not name a limit.
const DefaultFeaturedLimit = 4

// ListingFilter narrows the public listing query. Zero values match everything.
type ListingFilter struct {
	Type         *entity.ListingType
	CategorySlug string
}

// CreateListingInput is a seller submission. A nil CategoryID files the
// listing without a category.
type CreateListingInput struct {
	Type        entity.ListingType
	Title       string
	Description string
	Price       decimal.Decimal
	CategoryID  *uuid.UUID
}

// ListingUsecase covers the public catalogue and the seller's own listings.
type ListingUsecase interface {
	// ListApproved returns approved listings newest first.
	ListApproved(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)
	ListBooks(ctx context.Context) ([]*entity.Listing, error)
	ListMarketplace(ctx context.Context) ([]*entity.Listing, error)

	// ListFeatured returns up to limit featured approved listings of a type,
	// falling back to the most recent approved ones when none are featured.
	ListFeatured(ctx context.Context, listingType entity.ListingType, limit int) ([]*entity.Listing, error)

	// ListByOwner returns every listing of a seller regardless of status.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)

	// GetListing applies the visibility rule for viewer.
	GetListing(ctx context.Context, listingID uuid.UUID, viewer entity.Viewer) (*entity.Listing, error)

	CreateListing(ctx context.Context, sellerID uuid.UUID, input *CreateListingInput) (*entity.Listing, error)
	UploadListingImage(ctx context.Context, sellerID, listingID uuid.UUID, image *service.ImageUpload) (*entity.Listing, error)
	DeleteOwnListing(ctx context.Context, sellerID, listingID uuid.UUID) error
}
