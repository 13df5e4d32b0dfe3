package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"crimson/config"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/infra/session"
	mockRepo "crimson/internal/mocks/repository"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"
	"crimson/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartHandlerFixture struct {
	handler    *CartHandler
	cartUC     *mockUsecase.MockCartUsecase
	checkoutUC *mockUsecase.MockCheckoutUsecase
	profileUC  *mockUsecase.MockProfileUsecase
}

func newCartHandlerFixture(t *testing.T) *cartHandlerFixture {
	f := &cartHandlerFixture{
		cartUC:     mockUsecase.NewMockCartUsecase(t),
		checkoutUC: mockUsecase.NewMockCheckoutUsecase(t),
		profileUC:  mockUsecase.NewMockProfileUsecase(t),
	}
	f.handler = NewCartHandler(CartHandlerParams{
		CartUC:     f.cartUC,
		CheckoutUC: f.checkoutUC,
		ProfileUC:  f.profileUC,
		Logger:     testLogger,
	})

	return f
}

func TestCartHandler_GuestSession(t *testing.T) {
	t.Run("mints a session for a new guest", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		var gotKey string
		f.cartUC.EXPECT().GetCart(mock.Anything, mock.Anything).
			Run(func(_ context.Context, sessionKey string) { gotKey = sessionKey }).
			Return(&usecase.CartView{DisplayTotal: "Rs 0"}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/cart", "")

		require.NoError(t, f.handler.GetCart(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		minted := rec.Header().Get(constants.HeaderCartSession)
		_, err := uuid.Parse(minted)
		require.NoError(t, err)
		assert.Equal(t, guestKeyPrefix+minted, gotKey)
	})

	t.Run("reuses a valid guest session", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		sessionID := uuid.New()
		f.cartUC.EXPECT().GetCart(mock.Anything, guestKeyPrefix+sessionID.String()).
			Return(&usecase.CartView{}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/cart", "")
		c.Request().Header.Set(constants.HeaderCartSession, sessionID.String())

		require.NoError(t, f.handler.GetCart(c))

		assert.Equal(t, sessionID.String(), rec.Header().Get(constants.HeaderCartSession))
	})

	t.Run("replaces a malformed session id", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		f.cartUC.EXPECT().GetCart(mock.Anything, mock.Anything).Return(&usecase.CartView{}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/v1/cart", "")
		c.Request().Header.Set(constants.HeaderCartSession, "not-a-session")

		require.NoError(t, f.handler.GetCart(c))

		assert.NotEqual(t, "not-a-session", rec.Header().Get(constants.HeaderCartSession))
	})

	t.Run("guest cannot address a user cart", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		victim := uuid.New()
		f.cartUC.EXPECT().GetCart(mock.Anything, guestKeyPrefix+victim.String()).Return(&usecase.CartView{}, nil)
		c, _ := newTestContext(http.MethodGet, "/api/v1/cart", "")
		c.Request().Header.Set(constants.HeaderCartSession, victim.String())

		require.NoError(t, f.handler.GetCart(c))
	})
}

func TestCartHandler_GuestReadsKeepNoSession(t *testing.T) {
	cfg := &config.Config{}
	cfg.Checkout.Currency = "Rs"
	store := session.NewMemoryStore(time.Hour, 10, testLogger)
	h := NewCartHandler(CartHandlerParams{
		CartUC:     impl.NewCartService(store, mockRepo.NewMockListingRepository(t), cfg),
		CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t),
		ProfileUC:  mockUsecase.NewMockProfileUsecase(t),
		Logger:     testLogger,
	})

	for range 20 {
		c, rec := newTestContext(http.MethodGet, "/api/v1/cart", "")
		require.NoError(t, h.GetCart(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(constants.HeaderCartSession))
	}

	assert.Equal(t, 0, store.Len())
}

func TestCartHandler_SessionsExhausted(t *testing.T) {
	f := newCartHandlerFixture(t)
	f.cartUC.EXPECT().AddItem(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrCartSessionsExhausted, "failed to access cart session"))
	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{"listing_id":"`+uuid.NewString()+`"}`)

	require.NoError(t, f.handler.AddItem(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "CART_SESSIONS_EXHAUSTED", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_SignedInUsesAccountCart(t *testing.T) {
	f := newCartHandlerFixture(t)
	userID := uuid.New()
	listingID := uuid.New()
	f.cartUC.EXPECT().AddItem(mock.Anything, userID.String(), listingID).
		Return(&usecase.CartView{TotalItems: 1, DisplayTotal: "Rs 2,500"}, nil)
	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{"listing_id":"`+listingID.String()+`"}`)
	asUser(c, userID)

	require.NoError(t, f.handler.AddItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constants.HeaderCartSession))
	view := decodeData[usecase.CartView](t, rec)
	assert.Equal(t, 1, view.TotalItems)
	assert.Equal(t, "Rs 2,500", view.DisplayTotal)
}

func TestCartHandler_AddItem_Rejections(t *testing.T) {
	t.Run("missing listing id", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{}`)

		require.NoError(t, f.handler.AddItem(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, map[string]any{"listing_id": "is required"}, env.Error.Details)
	})

	t.Run("listing not approved", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		f.cartUC.EXPECT().AddItem(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrListingNotFound)
		c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{"listing_id":"`+uuid.NewString()+`"}`)

		require.NoError(t, f.handler.AddItem(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "LISTING_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	listingID := uuid.New()

	t.Run("zero quantity is passed through", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		f.cartUC.EXPECT().UpdateQuantity(mock.Anything, mock.Anything, listingID, 0).Return(&usecase.CartView{}, nil)
		c, rec := newTestContext(http.MethodPut, "/", `{"quantity":0}`)
		c.SetParamNames("listingId")
		c.SetParamValues(listingID.String())

		require.NoError(t, f.handler.UpdateItem(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("quantity is required", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		c, rec := newTestContext(http.MethodPut, "/", `{}`)
		c.SetParamNames("listingId")
		c.SetParamValues(listingID.String())

		require.NoError(t, f.handler.UpdateItem(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid listing id", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		c, rec := newTestContext(http.MethodPut, "/", `{"quantity":1}`)
		c.SetParamNames("listingId")
		c.SetParamValues("nope")

		require.NoError(t, f.handler.UpdateItem(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestCartHandler_Checkout(t *testing.T) {
	handoff := &entity.OrderHandoff{
		OrderID:  "CR-ABC1234",
		Message:  "Hello",
		DeepLink: "https://wa.me/94771234567?text=Hello",
	}

	t.Run("signed-in shopper passes the profile email", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		userID := uuid.New()
		f.profileUC.EXPECT().GetProfile(mock.Anything, userID).
			Return(&entity.Profile{ID: userID, Email: "nimal@uni.lk"}, nil)
		f.checkoutUC.EXPECT().InitiateCheckout(mock.Anything, userID.String(), "nimal@uni.lk").Return(handoff, nil)
		c, rec := newTestContext(http.MethodPost, "/api/v1/cart/checkout", "")
		asUser(c, userID)

		require.NoError(t, f.handler.Checkout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, *handoff, decodeData[entity.OrderHandoff](t, rec))
	})

	t.Run("guest checks out without email", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		f.checkoutUC.EXPECT().InitiateCheckout(mock.Anything, mock.Anything, "").Return(handoff, nil)
		c, rec := newTestContext(http.MethodPost, "/api/v1/cart/checkout", "")

		require.NoError(t, f.handler.Checkout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newCartHandlerFixture(t)
		f.checkoutUC.EXPECT().InitiateCheckout(mock.Anything, mock.Anything, "").Return(nil, domainerrors.ErrCartEmpty)
		c, rec := newTestContext(http.MethodPost, "/api/v1/cart/checkout", "")

		require.NoError(t, f.handler.Checkout(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "CART_EMPTY", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestCartHandler_CheckoutQR(t *testing.T) {
	f := newCartHandlerFixture(t)
	png := []byte("\x89PNG\r\n\x1a\nfake")
	f.checkoutUC.EXPECT().CheckoutQR(mock.Anything, mock.Anything, "").
		Return(png, &entity.OrderHandoff{OrderID: "CR-XYZ0001"}, nil)
	c, rec := newTestContext(http.MethodGet, "/api/v1/cart/checkout/qr", "")

	require.NoError(t, f.handler.CheckoutQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "CR-XYZ0001", rec.Header().Get(constants.HeaderOrderID))
	assert.Equal(t, png, rec.Body.Bytes())
}
