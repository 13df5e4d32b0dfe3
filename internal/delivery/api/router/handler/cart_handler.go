package handler

import (
	"log/slog"
	"net/http"

	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/response"
	"crimson/internal/domain/constants"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// guestKeyPrefix keeps guest carts apart from user carts, which are keyed by
// the bare user id.
const guestKeyPrefix = "guest:"

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC     usecase.CartUsecase
	CheckoutUC usecase.CheckoutUsecase
	ProfileUC  usecase.ProfileUsecase
	Logger     *slog.Logger
}

// CartHandler serves the session cart and the checkout handoff. Signed-in
// shoppers use their account cart; guests are tracked by X-Cart-Session.
type CartHandler struct {
	cartUC     usecase.CartUsecase
	checkoutUC usecase.CheckoutUsecase
	profileUC  usecase.ProfileUsecase
	logger     *slog.Logger
}

func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:     params.CartUC,
		checkoutUC: params.CheckoutUC,
		profileUC:  params.ProfileUC,
		logger:     params.Logger,
	}
}

type AddCartItemRequest struct {
	ListingID uuid.UUID `json:"listing_id" validate:"required"`
}

// UpdateCartItemRequest sets a quantity; zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), h.sessionKey(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem adds an approved listing or bumps its quantity.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), h.sessionKey(c), req.ListingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("listingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	view, err := h.cartUC.UpdateQuantity(c.Request().Context(), h.sessionKey(c), listingID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("listingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	view, err := h.cartUC.RemoveItem(c.Request().Context(), h.sessionKey(c), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.cartUC.ClearCart(c.Request().Context(), h.sessionKey(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Checkout builds the order message and the deep link to the operator.
// The cart is left as it is.
func (h *CartHandler) Checkout(c echo.Context) error {
	email, err := h.shopperEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	handoff, err := h.checkoutUC.InitiateCheckout(c.Request().Context(), h.sessionKey(c), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, handoff)
}

// CheckoutQR returns the deep link of a fresh handoff as a PNG. The order
// reference is sent in X-Order-Id.
func (h *CartHandler) CheckoutQR(c echo.Context) error {
	email, err := h.shopperEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, handoff, err := h.checkoutUC.CheckoutQR(c.Request().Context(), h.sessionKey(c), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(constants.HeaderOrderID, handoff.OrderID)

	return c.Blob(http.StatusOK, "image/png", png)
}

// sessionKey resolves the cart owner. Guests without a valid session id get a
// new one, returned in the X-Cart-Session response header.
func (h *CartHandler) sessionKey(c echo.Context) string {
	if userID, ok := middleware.GetUserID(c); ok {
		return userID.String()
	}

	sessionID, err := uuid.Parse(c.Request().Header.Get(constants.HeaderCartSession))
	if err != nil || sessionID == uuid.Nil {
		sessionID = uuid.New()
	}
	c.Response().Header().Set(constants.HeaderCartSession, sessionID.String())

	return guestKeyPrefix + sessionID.String()
}

// shopperEmail returns the signed-in shopper's email, or "" for guests.
func (h *CartHandler) shopperEmail(c echo.Context) (string, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return "", nil
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return "", err
	}

	return profile.Email, nil
}
