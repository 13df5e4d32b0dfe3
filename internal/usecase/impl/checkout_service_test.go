package impl

import (
	"bytes"
	"context"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	mockSvc "crimson/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service  *checkoutService
	sessions *mockSvc.MockCartSessionStore
	qrCode   *mockSvc.MockQRCodeService
	now      time.Time
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fx := checkoutServiceFixtures{
		sessions: mockSvc.NewMockCartSessionStore(t),
		qrCode:   mockSvc.NewMockQRCodeService(t),
		now:      time.UnixMilli(1735689600000),
	}

	fx.service = NewCheckoutService(CheckoutServiceParams{
		Sessions:      fx.sessions,
		QRCodeService: fx.qrCode,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	}).(*checkoutService)
	fx.service.now = func() time.Time { return fx.now }
	// 0, 1, 35 and 36 map to "0", "1", "Z" and "0".
	fx.service.random = bytes.NewReader([]byte{0, 1, 35, 36})

	return fx
}

func newCheckoutCart() *entity.Cart {
	cart := entity.NewCart()
	book := entity.CartLine{ListingID: uuid.New(), Title: "Calculus", UnitPrice: decimal.NewFromInt(2500)}
	cart.Add(book)
	cart.Add(book)
	cart.Add(entity.CartLine{ListingID: uuid.New(), Title: "Desk lamp", UnitPrice: decimal.NewFromInt(1200)})

	return cart
}

func TestCheckoutService_InitiateCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	cart := newCheckoutCart()
	expectSession(fx.sessions, "user-1", cart)

	handoff, err := fx.service.InitiateCheckout(ctx, "user-1", "kasun.p@uni.lk")
	require.NoError(t, err)

	wantOrderID := "CR-" + strings.ToUpper(strconv.FormatInt(1735689600000, 36)) + "01Z0"
	assert.Equal(t, wantOrderID, handoff.OrderID)

	wantMessage := "Hello, I want to place an order from Crimson.\n\n" +
		"Items:\n" +
		"- Calculus — Rs 2,500 × 2\n" +
		"- Desk lamp — Rs 1,200 × 1\n" +
		"\n" +
		"Total: Rs 6,200\n" +
		"Order ID: " + wantOrderID + "\n" +
		"Username: kasun.p"
	assert.Equal(t, wantMessage, handoff.Message)

	prefix := "https://wa.me/94771234567?text="
	require.True(t, strings.HasPrefix(handoff.DeepLink, prefix), handoff.DeepLink)
	text := strings.TrimPrefix(handoff.DeepLink, prefix)
	assert.NotContains(t, text, "+")
	assert.True(t, strings.HasPrefix(text, "Hello%2C%20I%20want"), text)

	decoded, err := url.PathUnescape(text)
	require.NoError(t, err)
	assert.Equal(t, wantMessage, decoded)

	// The cart is left for the shopper to clear.
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCheckoutService_InitiateCheckout_Guest(t *testing.T) {
	fx := createTestCheckoutService(t)
	expectSession(fx.sessions, "guest-1", newCheckoutCart())

	handoff, err := fx.service.InitiateCheckout(context.Background(), "guest-1", "")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(handoff.Message, "Username: Guest"))
}

func TestCheckoutService_InitiateCheckout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	expectSession(fx.sessions, "guest-1", entity.NewCart())

	_, err := fx.service.InitiateCheckout(context.Background(), "guest-1", "")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_CheckoutQR(t *testing.T) {
	fx := createTestCheckoutService(t)
	expectSession(fx.sessions, "user-1", newCheckoutCart())

	fx.qrCode.EXPECT().
		EncodeURL(mock.MatchedBy(func(content string) bool {
			return strings.HasPrefix(content, "https://wa.me/94771234567?text=")
		})).
		Return([]byte("png"), nil)

	png, handoff, err := fx.service.CheckoutQR(context.Background(), "user-1", "")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	assert.True(t, strings.HasPrefix(handoff.OrderID, entity.OrderIDPrefix))
}

func TestCheckoutService_CheckoutQR_EncodeFailure(t *testing.T) {
	fx := createTestCheckoutService(t)
	expectSession(fx.sessions, "user-1", newCheckoutCart())

	fx.qrCode.EXPECT().EncodeURL(mock.Anything).Return(nil, errors.New("content too long"))

	_, _, err := fx.service.CheckoutQR(context.Background(), "user-1", "")
	require.Error(t, err)
}

func TestBuildDeepLink(t *testing.T) {
	assert.Equal(t,
		"https://wa.me/123?text=a%20b%26c%3Dd%0A",
		buildDeepLink("wa.me", "123", "a b&c=d\n"),
	)
	assert.Equal(t, "94771234567", digitsOnly("+94 77-123 4567"))
}
