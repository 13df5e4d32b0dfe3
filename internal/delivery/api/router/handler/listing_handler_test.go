package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/service"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListingHandler(t *testing.T) (*ListingHandler, *mockUsecase.MockListingUsecase) {
	listingUC := mockUsecase.NewMockListingUsecase(t)

	return NewListingHandler(ListingHandlerParams{
		ListingUC: listingUC,
		Config:    testConfig(),
		Logger:    testLogger,
	}), listingUC
}

func TestListingHandler_ListListings(t *testing.T) {
	h, listingUC := newListingHandler(t)
	seller := "kasun"
	listingUC.EXPECT().ListApproved(mock.Anything, mock.MatchedBy(func(f usecase.ListingFilter) bool {
		return f.Type != nil && *f.Type == entity.ListingTypeService && f.CategorySlug == "tutoring"
	})).Return([]*entity.Listing{
		{ID: uuid.New(), Type: entity.ListingTypeService, Title: "Calculus tutoring", Status: entity.ListingStatusApproved},
		{ID: uuid.New(), Type: entity.ListingTypeService, Title: "Guitar lessons", Price: decimal.NewFromInt(1500), SellerName: &seller, Status: entity.ListingStatusApproved},
	}, nil)
	c, rec := newTestContext(http.MethodGet, "/api/v1/listings?type=service&category=tutoring", "")

	require.NoError(t, h.ListListings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	listings := decodeData[[]ListingResponse](t, rec)
	require.Len(t, listings, 2)
	assert.Equal(t, entity.PlaceholderContactForPricing, listings[0].DisplayPrice)
	assert.Equal(t, entity.UnknownSeller, listings[0].SellerName)
	assert.Equal(t, "Rs 1,500", listings[1].DisplayPrice)
	assert.Equal(t, "kasun", listings[1].SellerName)
}

func TestListingHandler_ListListings_InvalidType(t *testing.T) {
	h, listingUC := newListingHandler(t)
	listingUC.EXPECT().ListApproved(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidListingType)
	c, rec := newTestContext(http.MethodGet, "/api/v1/listings?type=car", "")

	require.NoError(t, h.ListListings(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_LISTING_TYPE", decodeEnvelope(t, rec).Error.Code)
}

func TestListingHandler_ListFeatured(t *testing.T) {
	t.Run("defaults to books and the default limit", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingUC.EXPECT().ListFeatured(mock.Anything, entity.ListingTypeBook, usecase.DefaultFeaturedLimit).Return(nil, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/listings/featured", "")

		require.NoError(t, h.ListFeatured(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeData[[]ListingResponse](t, rec))
	})

	t.Run("explicit type and limit", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingUC.EXPECT().ListFeatured(mock.Anything, entity.ListingTypeItem, 8).Return(nil, nil)
		c, _ := newTestContext(http.MethodGet, "/api/v1/listings/featured?type=item&limit=8", "")

		require.NoError(t, h.ListFeatured(c))
	})

	t.Run("invalid limit", func(t *testing.T) {
		h, _ := newListingHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/listings/featured?limit=-1", "")

		require.NoError(t, h.ListFeatured(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListingHandler_GetListing_PassesViewer(t *testing.T) {
	h, listingUC := newListingHandler(t)
	userID := uuid.New()
	listingID := uuid.New()
	listingUC.EXPECT().GetListing(mock.Anything, listingID, entity.Viewer{UserID: userID}).
		Return(&entity.Listing{ID: listingID, SellerID: userID, Type: entity.ListingTypeBook, Status: entity.ListingStatusPending}, nil)
	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())
	asUser(c, userID)

	require.NoError(t, h.GetListing(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.ListingStatusPending, decodeData[ListingResponse](t, rec).Status)
}

func TestListingHandler_GetListing_HiddenIsNotFound(t *testing.T) {
	h, listingUC := newListingHandler(t)
	listingID := uuid.New()
	listingUC.EXPECT().GetListing(mock.Anything, listingID, entity.Viewer{}).Return(nil, domainerrors.ErrListingNotFound)
	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())

	require.NoError(t, h.GetListing(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListingHandler_CreateListing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		sellerID := uuid.New()
		categoryID := uuid.New()
		listingUC.EXPECT().CreateListing(mock.Anything, sellerID, &usecase.CreateListingInput{
			Type:        entity.ListingTypeBook,
			Title:       "Organic Chemistry",
			Description: "3rd edition",
			Price:       decimal.RequireFromString("2500"),
			CategoryID:  &categoryID,
		}).Return(&entity.Listing{
			ID:       uuid.New(),
			SellerID: sellerID,
			Type:     entity.ListingTypeBook,
			Title:    "Organic Chemistry",
			Price:    decimal.NewFromInt(2500),
			Status:   entity.ListingStatusPending,
		}, nil)
		body := `{"type":"book","title":"Organic Chemistry","description":"3rd edition","price":"2500","category_id":"` + categoryID.String() + `"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/listings", body)
		asUser(c, sellerID)

		require.NoError(t, h.CreateListing(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		created := decodeData[ListingResponse](t, rec)
		assert.Equal(t, entity.ListingStatusPending, created.Status)
		assert.Equal(t, "Rs 2,500", created.DisplayPrice)
	})

	t.Run("validation reports every field", func(t *testing.T) {
		h, _ := newListingHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/listings", `{"type":"car","title":"   "}`)
		asUser(c, uuid.New())

		require.NoError(t, h.CreateListing(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, map[string]any{
			"type":  "must be one of book item service request",
			"title": "is required",
		}, env.Error.Details)
	})

	t.Run("price rule details are returned", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingUC.EXPECT().CreateListing(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidPrice.WithDetails(entity.ErrPriceRequired.Error()))
		c, rec := newTestContext(http.MethodPost, "/api/v1/listings", `{"type":"item","title":"Lamp","price":0}`)
		asUser(c, uuid.New())

		require.NoError(t, h.CreateListing(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_PRICE", env.Error.Code)
		assert.Equal(t, entity.ErrPriceRequired.Error(), env.Error.Details)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := newListingHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/listings", `{}`)

		require.NoError(t, h.CreateListing(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func newMultipartContext(t *testing.T, field string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "photo.bin")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestListingHandler_UploadImage(t *testing.T) {
	pngBytes := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 600)...)

	t.Run("sniffs the content type and streams the whole file", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		sellerID := uuid.New()
		listingID := uuid.New()
		imageURL := "https://cdn.example.com/product-images/x.png"
		listingUC.EXPECT().UploadListingImage(mock.Anything, sellerID, listingID, mock.Anything).
			RunAndReturn(func(_ context.Context, _, _ uuid.UUID, image *service.ImageUpload) (*entity.Listing, error) {
				assert.Equal(t, "image/png", image.ContentType)
				assert.Equal(t, int64(len(pngBytes)), image.Size)
				got, err := io.ReadAll(image.Body)
				require.NoError(t, err)
				assert.Equal(t, pngBytes, got)

				return &entity.Listing{ID: listingID, SellerID: sellerID, Type: entity.ListingTypeItem, ImageURL: &imageURL}, nil
			})
		c, rec := newMultipartContext(t, imageFormField, pngBytes)
		c.SetParamNames("id")
		c.SetParamValues(listingID.String())
		asUser(c, sellerID)

		require.NoError(t, h.UploadImage(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, &imageURL, decodeData[ListingResponse](t, rec).ImageURL)
	})

	t.Run("missing field", func(t *testing.T) {
		h, _ := newListingHandler(t)
		c, rec := newMultipartContext(t, "file", pngBytes)
		c.SetParamNames("id")
		c.SetParamValues(uuid.NewString())
		asUser(c, uuid.New())

		require.NoError(t, h.UploadImage(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store disabled", func(t *testing.T) {
		h, listingUC := newListingHandler(t)
		listingUC.EXPECT().UploadListingImage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrStorageUnavailable)
		c, rec := newMultipartContext(t, imageFormField, pngBytes)
		c.SetParamNames("id")
		c.SetParamValues(uuid.NewString())
		asUser(c, uuid.New())

		require.NoError(t, h.UploadImage(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestListingHandler_DeleteListing(t *testing.T) {
	h, listingUC := newListingHandler(t)
	sellerID := uuid.New()
	listingID := uuid.New()
	listingUC.EXPECT().DeleteOwnListing(mock.Anything, sellerID, listingID).Return(domainerrors.ErrListingForbidden)
	c, rec := newTestContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())
	asUser(c, sellerID)

	require.NoError(t, h.DeleteListing(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
