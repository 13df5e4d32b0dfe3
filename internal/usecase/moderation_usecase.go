package usecase

import (
	"context"

	"crimson/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerationUsecase is the admin side of the listing workflow. Every
// operation re-checks that adminID belongs to an admin profile.
type ModerationUsecase interface {
	ListPending(ctx context.Context, adminID uuid.UUID) ([]*entity.Listing, error)
	ListRejected(ctx context.Context, adminID uuid.UUID) ([]*entity.Listing, error)
	ListAllApproved(ctx context.Context, adminID uuid.UUID) ([]*entity.Listing, error)

	Approve(ctx context.Context, adminID, listingID uuid.UUID) (*entity.Listing, error)
	Reject(ctx context.Context, adminID, listingID uuid.UUID) (*entity.Listing, error)
	Restore(ctx context.Context, adminID, listingID uuid.UUID) (*entity.Listing, error)
	Delete(ctx context.Context, adminID, listingID uuid.UUID) error

	// SetFeatured toggles the featured flag of an approved listing.
	SetFeatured(ctx context.Context, adminID, listingID uuid.UUID, featured bool) (*entity.Listing, error)
}
