package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/domain/service"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type moderationService struct {
	profileRepo repository.ProfileRepository
	listingRepo repository.ListingRepository
	cache       service.ListingCache
	imageStore  service.ImageStore
	publisher   service.EventPublisher
	now         func() time.Time
	logger      *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	ListingRepo repository.ListingRepository
	Cache       service.ListingCache
	ImageStore  service.ImageStore
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		profileRepo: params.ProfileRepo,
		listingRepo: params.ListingRepo,
		cache:       params.Cache,
		imageStore:  params.ImageStore,
		publisher:   params.Publisher,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *moderationService) ListPending(ctx context.Context, adminID uuid.UUID) ([]*entity.Listing, error) {
	return srv.listByStatus(ctx, adminID, entity.ListingStatusPending)
}

func (srv *moderationService) ListRejected(ctx context.Context, adminID uuid.UUID) ([]*entity.Listing, error) {
	return srv.listByStatus(ctx, adminID, entity.ListingStatusRejected)
}

func (srv *moderationService) ListAllApproved(ctx context.Context, adminID uuid.UUID) ([]*entity.Listing, error) {
	return srv.listByStatus(ctx, adminID, entity.ListingStatusApproved)
}

func (srv *moderationService) Approve(ctx context.Context, adminID, listingID uuid.UUID) (*entity.Listing, error) {
	return srv.transition(ctx, adminID, listingID, entity.ModerationApprove)
}

func (srv *moderationService) Reject(ctx context.Context, adminID, listingID uuid.UUID) (*entity.Listing, error) {
	return srv.transition(ctx, adminID, listingID, entity.ModerationReject)
}

func (srv *moderationService) Restore(ctx context.Context, adminID, listingID uuid.UUID) (*entity.Listing, error) {
	return srv.transition(ctx, adminID, listingID, entity.ModerationRestore)
}

// Delete removes a listing in any status.
func (srv *moderationService) Delete(ctx context.Context, adminID, listingID uuid.UUID) error {
	if err := requireAdmin(ctx, srv.profileRepo, adminID); err != nil {
		return err
	}

	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return err
	}

	if err := srv.listingRepo.Delete(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, listingID.String())
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	if listing.ImageURL != nil {
		if err := srv.imageStore.DeleteByURL(ctx, *listing.ImageURL); err != nil {
			srv.log(ctx).Warn("Failed to delete listing image", slog.String("url", *listing.ImageURL), slog.Any("error", err))
		}
	}

	listing.Status = ""
	srv.afterMutation(ctx, adminID, listing, entity.ModerationDelete)

	return nil
}

func (srv *moderationService) SetFeatured(ctx context.Context, adminID, listingID uuid.UUID, featured bool) (*entity.Listing, error) {
	if err := requireAdmin(ctx, srv.profileRepo, adminID); err != nil {
		return nil, err
	}

	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return nil, err
	}
	if featured && listing.Status != entity.ListingStatusApproved {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("only approved listings can be featured")
	}

	if err := srv.listingRepo.SetFeatured(ctx, listingID, featured); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, listingID.String())
		}

		return nil, errors.Wrap(err, "failed to set featured flag")
	}

	listing.Featured = featured
	srv.invalidate(ctx)

	return listing, nil
}

func (srv *moderationService) listByStatus(ctx context.Context, adminID uuid.UUID, status entity.ListingStatus) ([]*entity.Listing, error) {
	if err := requireAdmin(ctx, srv.profileRepo, adminID); err != nil {
		return nil, err
	}

	listings, err := srv.listingRepo.List(ctx, repository.ListingQuery{
		Statuses: []entity.ListingStatus{status},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s listings", status)
	}

	return listings, nil
}

func (srv *moderationService) transition(ctx context.Context, adminID, listingID uuid.UUID, action entity.ModerationAction) (*entity.Listing, error) {
	if err := requireAdmin(ctx, srv.profileRepo, adminID); err != nil {
		return nil, err
	}

	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return nil, err
	}

	next, err := listing.Status.Next(action)
	if err != nil {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(err.Error())
	}

	if err := srv.listingRepo.UpdateStatus(ctx, listingID, listing.Status, next); err != nil {
		if !errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(err, "failed to update listing status")
		}

		// The row was deleted or moved by another admin since it was read.
		if _, findErr := findListing(ctx, srv.listingRepo, listingID); findErr != nil {
			return nil, findErr
		}

		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("listing status changed concurrently")
	}

	listing.Status = next
	if next != entity.ListingStatusApproved {
		listing.Featured = false
	}
	srv.afterMutation(ctx, adminID, listing, action)

	return listing, nil
}

// afterMutation drops cached queries and notifies the seller. Neither step
// undoes the committed change when it fails.
func (srv *moderationService) afterMutation(ctx context.Context, adminID uuid.UUID, listing *entity.Listing, action entity.ModerationAction) {
	srv.invalidate(ctx)

	event := &service.ModerationEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ListingModerated: entity.ListingModerated{
			ListingID:   listing.ID,
			SellerID:    listing.SellerID,
			Title:       listing.Title,
			Action:      action,
			Status:      listing.Status,
			ModeratorID: adminID,
			OccurredAt:  srv.now().UTC(),
		},
	}
	if err := srv.publisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish moderation event",
			slog.Any("listingID", listing.ID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Listing moderated",
		slog.Any("listingID", listing.ID),
		slog.String("action", string(action)),
		slog.Any("adminID", adminID),
	)
}

func (srv *moderationService) invalidate(ctx context.Context) {
	if err := srv.cache.InvalidateAll(ctx); err != nil {
		srv.log(ctx).Warn("Listing cache invalidation failed", slog.Any("error", err))
	}
}
