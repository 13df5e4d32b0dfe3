package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"crimson/config"
	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/domain/service"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	defaultListingCacheTTL = time.Minute
	maxFeaturedLimit       = 50
	defaultMaxImageSize    = 5 << 20
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type listingService struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	cache        service.ListingCache
	imageStore   service.ImageStore
	cacheTTL     time.Duration
	maxImageSize int64
	loads        singleflight.Group
	now          func() time.Time
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.ListingCache
	ImageStore   service.ImageStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	cacheTTL := defaultListingCacheTTL
	if params.Config.Redis != nil && params.Config.Redis.CacheTTL > 0 {
		cacheTTL = params.Config.Redis.CacheTTL
	}

	maxImageSize := int64(defaultMaxImageSize)
	if params.Config.ObjectStorage != nil && params.Config.ObjectStorage.MaxImageSize > 0 {
		maxImageSize = params.Config.ObjectStorage.MaxImageSize
	}

	return &listingService{
		listingRepo:  params.ListingRepo,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		imageStore:   params.ImageStore,
		cacheTTL:     cacheTTL,
		maxImageSize: maxImageSize,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *listingService) ListApproved(ctx context.Context, filter usecase.ListingFilter) ([]*entity.Listing, error) {
	query := repository.ListingQuery{
		Statuses:     []entity.ListingStatus{entity.ListingStatusApproved},
		CategorySlug: strings.TrimSpace(filter.CategorySlug),
	}

	key := "approved:all"
	if filter.Type != nil {
		if !filter.Type.IsValid() {
			return nil, domainerrors.ErrInvalidListingType
		}
		query.Types = []entity.ListingType{*filter.Type}
		key = "approved:" + string(*filter.Type)
	}
	if query.CategorySlug != "" {
		key += ":" + query.CategorySlug
	}

	return srv.cachedList(ctx, key, query)
}

func (srv *listingService) ListBooks(ctx context.Context) ([]*entity.Listing, error) {
	listingType := entity.ListingTypeBook

	return srv.ListApproved(ctx, usecase.ListingFilter{Type: &listingType})
}

func (srv *listingService) ListMarketplace(ctx context.Context) ([]*entity.Listing, error) {
	listingType := entity.ListingTypeItem

	return srv.ListApproved(ctx, usecase.ListingFilter{Type: &listingType})
}

func (srv *listingService) ListFeatured(ctx context.Context, listingType entity.ListingType, limit int) ([]*entity.Listing, error) {
	if !listingType.IsValid() {
		return nil, domainerrors.ErrInvalidListingType
	}
	if limit <= 0 {
		limit = usecase.DefaultFeaturedLimit
	}
	limit = min(limit, maxFeaturedLimit)

	query := repository.ListingQuery{
		Statuses:     []entity.ListingStatus{entity.ListingStatusApproved},
		Types:        []entity.ListingType{listingType},
		FeaturedOnly: true,
		Limit:        limit,
	}
	key := "featured:" + string(listingType) + ":" + strconv.Itoa(limit)

	listings, err := srv.cachedList(ctx, key, query)
	if err != nil {
		return nil, err
	}
	if len(listings) > 0 {
		return listings, nil
	}

	query.FeaturedOnly = false

	return srv.cachedList(ctx, "recent:"+string(listingType)+":"+strconv.Itoa(limit), query)
}

func (srv *listingService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.List(ctx, repository.ListingQuery{SellerID: &ownerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner listings")
	}

	return listings, nil
}

func (srv *listingService) GetListing(ctx context.Context, listingID uuid.UUID, viewer entity.Viewer) (*entity.Listing, error) {
	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return nil, err
	}

	// Hidden listings are reported as missing so their existence does not leak.
	if !listing.VisibleTo(viewer) {
		return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not visible")
	}

	return listing, nil
}

func (srv *listingService) CreateListing(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateListingInput) (*entity.Listing, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrBlankTitle
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidListingType
	}
	if err := input.Type.ValidatePrice(input.Price); err != nil {
		return nil, domainerrors.ErrInvalidPrice.WithDetails(err.Error())
	}

	if input.CategoryID != nil {
		category, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, input.CategoryID.String())
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find category")
		}
		if !category.Accepts(input.Type) {
			return nil, domainerrors.ErrCategoryMismatch
		}
	}

	listing := entity.NewListing(sellerID, input.Type, title, strings.TrimSpace(input.Description), input.Price, input.CategoryID)
	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Listing submitted for review",
		slog.Any("listingID", listing.ID),
		slog.String("type", string(listing.Type)),
	)

	// Reload for the joined seller and category fields.
	return findListing(ctx, srv.listingRepo, listing.ID)
}

func (srv *listingService) UploadListingImage(ctx context.Context, sellerID, listingID uuid.UUID, image *service.ImageUpload) (*entity.Listing, error) {
	ext, err := srv.validateImage(image)
	if err != nil {
		return nil, err
	}

	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != sellerID {
		return nil, domainerrors.ErrListingForbidden
	}

	key := sellerID.String() + "/" + strconv.FormatInt(srv.now().UnixMilli(), 10) + "." + ext
	imageURL, err := srv.imageStore.Upload(ctx, key, image)
	if errors.Is(err, service.ErrImageStoreDisabled) {
		return nil, domainerrors.ErrStorageUnavailable
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload listing image")
	}

	if err := srv.listingRepo.SetImageURL(ctx, listingID, &imageURL); err != nil {
		// The object is orphaned unless removed here.
		srv.deleteImage(ctx, imageURL)

		return nil, errors.Wrap(err, "failed to attach listing image")
	}

	if listing.ImageURL != nil {
		srv.deleteImage(ctx, *listing.ImageURL)
	}
	listing.ImageURL = &imageURL
	srv.invalidate(ctx)

	return listing, nil
}

func (srv *listingService) DeleteOwnListing(ctx context.Context, sellerID, listingID uuid.UUID) error {
	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return domainerrors.ErrListingForbidden
	}

	if err := srv.listingRepo.Delete(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "delete listing")
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	if listing.ImageURL != nil {
		srv.deleteImage(ctx, *listing.ImageURL)
	}
	srv.invalidate(ctx)

	return nil
}

// cachedList serves a public query from the cache. Concurrent misses on the
// same key and generation share one database query, which is not tied to any
// single caller's context. Cache failures fall back to the database.
func (srv *listingService) cachedList(ctx context.Context, key string, query repository.ListingQuery) ([]*entity.Listing, error) {
	var cached []*entity.Listing
	generation, hit, err := srv.cache.Get(ctx, key, &cached)
	if err != nil {
		srv.log(ctx).Warn("Listing cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	results := srv.loads.DoChan(generation+"|"+key, func() (any, error) {
		listings, err := srv.listingRepo.List(loadCtx, query)
		if err != nil {
			return nil, err
		}

		// Without a generation the write could land after an invalidation.
		if generation == "" {
			return listings, nil
		}
		if err := srv.cache.Set(loadCtx, generation, key, listings, srv.cacheTTL); err != nil {
			srv.log(loadCtx).Warn("Listing cache write failed", slog.String("key", key), slog.Any("error", err))
		}

		return listings, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "failed to list listings")
	case res := <-results:
		if res.Err != nil {
			return nil, errors.Wrap(res.Err, "failed to list listings")
		}

		return res.Val.([]*entity.Listing), nil
	}
}

func (srv *listingService) invalidate(ctx context.Context) {
	if err := srv.cache.InvalidateAll(ctx); err != nil {
		srv.log(ctx).Warn("Listing cache invalidation failed", slog.Any("error", err))
	}
}

func (srv *listingService) deleteImage(ctx context.Context, imageURL string) {
	if err := srv.imageStore.DeleteByURL(ctx, imageURL); err != nil {
		srv.log(ctx).Warn("Failed to delete listing image", slog.String("url", imageURL), slog.Any("error", err))
	}
}

// validateImage checks the upload and returns the file extension to store it under.
func (srv *listingService) validateImage(image *service.ImageUpload) (string, error) {
	if image == nil || image.Body == nil || image.Size <= 0 {
		return "", domainerrors.ErrInvalidImage.WithDetails("image is empty")
	}
	if image.Size > srv.maxImageSize {
		return "", domainerrors.ErrInvalidImage.WithDetails("image exceeds " + strconv.FormatInt(srv.maxImageSize, 10) + " bytes")
	}

	contentType, _, _ := strings.Cut(image.ContentType, ";")
	ext, ok := imageExtensions[strings.TrimSpace(strings.ToLower(contentType))]
	if !ok {
		return "", domainerrors.ErrInvalidImage.WithDetails("supported types are jpeg, png, webp and gif")
	}

	return ext, nil
}

// findListing loads a listing and maps a missing row to LISTING_NOT_FOUND.
func findListing(ctx context.Context, listingRepo repository.ListingRepository, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := listingRepo.FindByID(ctx, listingID)
	if errors.Is(err, repository.ErrListingNotFound) {
		return nil, errors.Wrap(domainerrors.ErrListingNotFound, listingID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}
