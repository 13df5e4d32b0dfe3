package handler

import (
	"context"
	"log/slog"
	"net/http"

	"crimson/config"
	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/response"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// AdminHandler exposes the moderation workflow.
type AdminHandler struct {
	moderationUC usecase.ModerationUsecase
	currency     string
	logger       *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		moderationUC: params.ModerationUC,
		currency:     currencyOf(params.Config),
		logger:       params.Logger,
	}
}

type SetFeaturedRequest struct {
	Featured *bool `json:"featured" validate:"required"`
}

type transitionFunc func(ctx context.Context, adminID, listingID uuid.UUID) (*entity.Listing, error)

// ListListings returns listings in ?status=, pending by default.
func (h *AdminHandler) ListListings(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()

	var (
		listings []*entity.Listing
		err      error
	)
	switch entity.ListingStatus(c.QueryParam("status")) {
	case "", entity.ListingStatusPending:
		listings, err = h.moderationUC.ListPending(ctx, adminID)
	case entity.ListingStatusRejected:
		listings, err = h.moderationUC.ListRejected(ctx, adminID)
	case entity.ListingStatusApproved:
		listings, err = h.moderationUC.ListAllApproved(ctx, adminID)
	default:
		return response.BadRequest(c, "INVALID_STATUS", "status must be one of pending, rejected, approved")
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponses(listings, h.currency))
}

func (h *AdminHandler) Approve(c echo.Context) error {
	return h.transition(c, h.moderationUC.Approve)
}

func (h *AdminHandler) Reject(c echo.Context) error {
	return h.transition(c, h.moderationUC.Reject)
}

// Restore sends a rejected listing back to the review queue.
func (h *AdminHandler) Restore(c echo.Context) error {
	return h.transition(c, h.moderationUC.Restore)
}

// SetFeatured toggles the featured flag of an approved listing.
func (h *AdminHandler) SetFeatured(c echo.Context) error {
	adminID, listingID, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid featured input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	listing, err := h.moderationUC.SetFeatured(c.Request().Context(), adminID, listingID, *req.Featured)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponse(listing, h.currency))
}

// DeleteListing removes a listing in any status.
func (h *AdminHandler) DeleteListing(c echo.Context) error {
	adminID, listingID, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.Delete(c.Request().Context(), adminID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing deleted successfully"})
}

func (h *AdminHandler) transition(c echo.Context, apply transitionFunc) error {
	adminID, listingID, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := apply(c.Request().Context(), adminID, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingResponse(listing, h.currency))
}

// target resolves the caller and the :id listing.
func (h *AdminHandler) target(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	return adminID, listingID, nil
}
