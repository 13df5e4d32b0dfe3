package impl

import (
	"context"
	"testing"
	"time"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/infra/session"
	mockRepo "crimson/internal/mocks/repository"
	mockSvc "crimson/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     *cartService
	sessions    *mockSvc.MockCartSessionStore
	listingRepo *mockRepo.MockListingRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	fx := cartServiceFixtures{
		sessions:    mockSvc.NewMockCartSessionStore(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
	}
	fx.service = NewCartService(fx.sessions, fx.listingRepo, newTestConfig()).(*cartService)

	return fx
}

// expectSession serves every With call for sessionKey from cart.
func expectSession(sessions *mockSvc.MockCartSessionStore, sessionKey string, cart *entity.Cart) {
	sessions.EXPECT().
		With(mock.Anything, sessionKey, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fn func(*entity.Cart) error) error {
			return fn(cart)
		})
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)
	expectSession(fx.sessions, "guest-1", entity.NewCart())

	view, err := fx.service.GetCart(context.Background(), "guest-1")

	require.NoError(t, err)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.Equal(t, "Rs 0", view.DisplayTotal)
}

func TestCartService_ReadOnlyCallsKeepNoSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour, 10, newDiscardLogger())
	listingRepo := mockRepo.NewMockListingRepository(t)
	srv := NewCartService(store, listingRepo, newTestConfig())
	ctx := context.Background()

	for range 20 {
		view, err := srv.GetCart(ctx, "guest:"+uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	}
	_, err := srv.ClearCart(ctx, "guest:"+uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
}

func TestCartService_AddItem_SnapshotsListing(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	cart := entity.NewCart()
	expectSession(fx.sessions, "guest-1", cart)

	listing := newApprovedListing(uuid.New(), entity.ListingTypeBook)
	listing.ImageURL = strPtr("https://cdn.test/cover.jpg")
	fx.listingRepo.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

	_, err := fx.service.AddItem(ctx, "guest-1", listing.ID)
	require.NoError(t, err)
	view, err := fx.service.AddItem(ctx, "guest-1", listing.ID)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	line := view.Items[0]
	assert.Equal(t, "Calculus 8th edition", line.Title)
	assert.True(t, decimal.NewFromInt(2500).Equal(line.UnitPrice))
	assert.Equal(t, entity.UnknownSeller, line.SellerName)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, "Rs 5,000", view.DisplayTotal)
}

func TestCartService_AddItem_OnlyApprovedListings(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	pending := newApprovedListing(uuid.New(), entity.ListingTypeItem)
	pending.Status = entity.ListingStatusPending
	missingID := uuid.New()

	fx.listingRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	fx.listingRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrListingNotFound)

	_, err := fx.service.AddItem(ctx, "guest-1", pending.ID)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)

	_, err = fx.service.AddItem(ctx, "guest-1", missingID)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestCartService_UpdateQuantityAndRemove(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	first := entity.CartLine{ListingID: uuid.New(), Title: "Lamp", UnitPrice: decimal.NewFromInt(1200)}
	second := entity.CartLine{ListingID: uuid.New(), Title: "Kettle", UnitPrice: decimal.NewFromInt(800)}

	cart := entity.NewCart()
	cart.Add(first)
	cart.Add(second)
	expectSession(fx.sessions, "user-1", cart)

	view, err := fx.service.UpdateQuantity(ctx, "user-1", first.ListingID, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, view.TotalItems)
	assert.Equal(t, "Rs 4,400", view.DisplayTotal)

	view, err = fx.service.UpdateQuantity(ctx, "user-1", second.ListingID, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, first.ListingID, view.Items[0].ListingID)

	view, err = fx.service.RemoveItem(ctx, "user-1", uuid.New())
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)

	view, err = fx.service.ClearCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_SessionErrorIsReturned(t *testing.T) {
	fx := createTestCartService(t)

	fx.sessions.EXPECT().With(mock.Anything, "guest-1", mock.Anything).Return(errors.New("session store closed"))

	_, err := fx.service.GetCart(context.Background(), "guest-1")
	require.Error(t, err)
}
