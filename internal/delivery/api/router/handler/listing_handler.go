package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"crimson/config"
	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/response"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// imageFormField is the multipart field carrying a listing image.
const imageFormField = "image"

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ListingHandler serves the public catalogue and the seller's own listings.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	currency  string
	logger    *slog.Logger
}

func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		currency:  currencyOf(params.Config),
		logger:    params.Logger,
	}
}

type CreateListingRequest struct {
	Type        string          `json:"type" validate:"required,listingtype"`
	Title       string          `json:"title" validate:"notblank,max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID      `json:"category_id"`
}

// ListListings returns approved listings, filtered by ?type= and ?category=.
func (h *ListingHandler) ListListings(c echo.Context) error {
	filter := usecase.ListingFilter{CategorySlug: c.QueryParam("category")}
	if raw := c.QueryParam("type"); raw != "" {
		listingType := entity.ListingType(raw)
		filter.Type = &listingType
	}

	listings, err := h.listingUC.ListApproved(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponses(listings, h.currency))
}

// ListFeatured returns the featured strip for ?type=, defaulting to books.
func (h *ListingHandler) ListFeatured(c echo.Context) error {
	listingType := entity.ListingTypeBook
	if raw := c.QueryParam("type"); raw != "" {
		listingType = entity.ListingType(raw)
	}

	limit := usecase.DefaultFeaturedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a positive integer")
		}
		limit = n
	}

	listings, err := h.listingUC.ListFeatured(c.Request().Context(), listingType, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponses(listings, h.currency))
}

// GetListing returns one listing. Pending and rejected listings are only
// visible to their seller and to admins.
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID, middleware.GetViewer(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponse(listing, h.currency))
}

// CreateListing submits a listing for review.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), userID, &usecase.CreateListingInput{
		Type:        entity.ListingType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newListingResponse(listing, h.currency))
}

// ListMyListings returns every listing of the caller regardless of status.
func (h *ListingHandler) ListMyListings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listings, err := h.listingUC.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponses(listings, h.currency))
}

// UploadImage attaches the multipart "image" file to a listing of the caller.
// The content type is sniffed from the bytes, not taken from the client.
func (h *ListingHandler) UploadImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field \"image\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded image could not be read")
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded image could not be read")
	}
	head = head[:n]

	listing, err := h.listingUC.UploadListingImage(c.Request().Context(), userID, listingID, &service.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: http.DetectContentType(head),
		Size:        fileHeader.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponse(listing, h.currency))
}

// DeleteListing removes a listing of the caller.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.DeleteOwnListing(c.Request().Context(), userID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing deleted successfully"})
}

func currencyOf(cfg *config.Config) string {
	if cfg == nil || cfg.Checkout.Currency == "" {
		return entity.DefaultCurrency
	}

	return cfg.Checkout.Currency
}
