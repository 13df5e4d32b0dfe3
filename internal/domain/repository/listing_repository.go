package repository

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingQuery filters a listing read. Empty fields do not filter.
// Results are always ordered newest first.
type ListingQuery struct {
	Statuses     []entity.ListingStatus
	Types        []entity.ListingType
	CategorySlug string
	SellerID     *uuid.UUID
	FeaturedOnly bool
	Limit        int
}

// ListingRepository persists listings. Every read joins the seller's
// username and the category name and slug.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	List(ctx context.Context, query ListingQuery) ([]*entity.Listing, error)

	// UpdateStatus moves a listing to status only if it is still in from,
	// returning ErrListingNotFound when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error

	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	SetImageURL(ctx context.Context, id uuid.UUID, imageURL *string) error

	// Delete removes the row. It returns ErrListingNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
