package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	profileRepo  repository.ProfileRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		logger:       logger,
	}
}

func (srv *categoryService) ListCategories(ctx context.Context, group *entity.CategoryGroup) ([]*entity.Category, error) {
	if group != nil && !group.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category group")
	}

	categories, err := srv.categoryRepo.List(ctx, group)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) GetCategoryBySlug(ctx context.Context, group entity.CategoryGroup, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, group, slug)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, slug)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, callerID uuid.UUID, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if err := requireAdmin(ctx, srv.profileRepo, callerID); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:  strings.TrimSpace(input.Name),
		Slug:  strings.ToLower(strings.TrimSpace(input.Slug)),
		Group: input.Group,
	}
	switch {
	case category.Name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case !slugPattern.MatchString(category.Slug):
		return nil, domainerrors.ErrValidationFailed.WithDetails("slug must be lowercase words joined by hyphens")
	case !category.Group.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category group")
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, errors.Wrap(domainerrors.ErrCategoryExists, category.Slug)
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Category created",
		slog.String("group", string(category.Group)),
		slog.String("slug", category.Slug),
	)

	return category, nil
}
