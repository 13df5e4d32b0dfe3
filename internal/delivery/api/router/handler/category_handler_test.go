package handler

import (
	"net/http"
	"testing"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryHandler(t *testing.T) (*CategoryHandler, *mockUsecase.MockCategoryUsecase) {
	categoryUC := mockUsecase.NewMockCategoryUsecase(t)

	return NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Logger: testLogger}), categoryUC
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("by group", func(t *testing.T) {
		h, categoryUC := newCategoryHandler(t)
		group := entity.CategoryGroupService
		categoryUC.EXPECT().ListCategories(mock.Anything, &group).
			Return([]*entity.Category{{ID: uuid.New(), Name: "Tutoring", Slug: "tutoring", Group: group}}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/categories?group=service", "")

		require.NoError(t, h.ListCategories(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tutoring", decodeData[[]entity.Category](t, rec)[0].Slug)
	})

	t.Run("all groups", func(t *testing.T) {
		h, categoryUC := newCategoryHandler(t)
		categoryUC.EXPECT().ListCategories(mock.Anything, (*entity.CategoryGroup)(nil)).Return(nil, nil)
		c, _ := newTestContext(http.MethodGet, "/api/v1/categories", "")

		require.NoError(t, h.ListCategories(c))
	})

	t.Run("unknown group", func(t *testing.T) {
		h, _ := newCategoryHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/categories?group=cars", "")

		require.NoError(t, h.ListCategories(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	adminID := uuid.New()

	t.Run("success", func(t *testing.T) {
		h, categoryUC := newCategoryHandler(t)
		categoryUC.EXPECT().CreateCategory(mock.Anything, adminID, &usecase.CreateCategoryInput{
			Name:  "Lab Equipment",
			Slug:  "lab-equipment",
			Group: entity.CategoryGroupMarketplace,
		}).Return(&entity.Category{ID: uuid.New(), Name: "Lab Equipment", Slug: "lab-equipment", Group: entity.CategoryGroupMarketplace}, nil)
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/categories", `{"name":"Lab Equipment","slug":"lab-equipment","group":"marketplace"}`)
		asAdmin(c, adminID)

		require.NoError(t, h.CreateCategory(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		h, categoryUC := newCategoryHandler(t)
		categoryUC.EXPECT().CreateCategory(mock.Anything, adminID, mock.Anything).Return(nil, domainerrors.ErrCategoryExists)
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/categories", `{"name":"Novels","slug":"novels","group":"book"}`)
		asAdmin(c, adminID)

		require.NoError(t, h.CreateCategory(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid group", func(t *testing.T) {
		h, _ := newCategoryHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/categories", `{"name":"Cars","slug":"cars","group":"vehicles"}`)
		asAdmin(c, adminID)

		require.NoError(t, h.CreateCategory(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"group": "must be one of book marketplace service request"}, decodeEnvelope(t, rec).Error.Details)
	})
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, categoryUC := newCategoryHandler(t)
		categoryUC.EXPECT().GetCategoryBySlug(mock.Anything, entity.CategoryGroupBook, "novels").
			Return(&entity.Category{ID: uuid.New(), Name: "Novels", Slug: "novels", Group: entity.CategoryGroupBook}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/categories/book/novels", "")
		c.SetParamNames("group", "slug")
		c.SetParamValues("book", "novels")

		require.NoError(t, h.GetCategory(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Novels", decodeData[entity.Category](t, rec).Name)
	})

	t.Run("missing", func(t *testing.T) {
		h, categoryUC := newCategoryHandler(t)
		categoryUC.EXPECT().GetCategoryBySlug(mock.Anything, entity.CategoryGroupService, "astrology").
			Return(nil, domainerrors.ErrCategoryNotFound)
		c, rec := newTestContext(http.MethodGet, "/api/v1/categories/service/astrology", "")
		c.SetParamNames("group", "slug")
		c.SetParamValues("service", "astrology")

		require.NoError(t, h.GetCategory(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CATEGORY_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("unknown group", func(t *testing.T) {
		h, _ := newCategoryHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/categories/cars/sedan", "")
		c.SetParamNames("group", "slug")
		c.SetParamValues("cars", "sedan")

		require.NoError(t, h.GetCategory(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
