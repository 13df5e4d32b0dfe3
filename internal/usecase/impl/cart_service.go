package impl

import (
	"context"

	"crimson/config"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/domain/service"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type cartService struct {
	sessions    service.CartSessionStore
	listingRepo repository.ListingRepository
	currency    string
}

// NewCartService creates a new cart service instance
func NewCartService(sessions service.CartSessionStore, listingRepo repository.ListingRepository, cfg *config.Config) usecase.CartUsecase {
	currency := cfg.Checkout.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	return &cartService{
		sessions:    sessions,
		listingRepo: listingRepo,
		currency:    currency,
	}
}

func (srv *cartService) GetCart(ctx context.Context, sessionKey string) (*usecase.CartView, error) {
	return srv.update(ctx, sessionKey, func(*entity.Cart) {})
}

func (srv *cartService) AddItem(ctx context.Context, sessionKey string, listingID uuid.UUID) (*usecase.CartView, error) {
	// Resolved before taking the session lock so the database call does not
	// block other requests of the same session.
	listing, err := findListing(ctx, srv.listingRepo, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != entity.ListingStatusApproved {
		return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing is not available")
	}

	line := entity.CartLine{
		ListingID:  listing.ID,
		Title:      listing.Title,
		UnitPrice:  listing.Price,
		ImageURL:   listing.ImageURL,
		SellerName: listing.SellerDisplayName(),
	}

	return srv.update(ctx, sessionKey, func(cart *entity.Cart) {
		cart.Add(line)
	})
}

func (srv *cartService) RemoveItem(ctx context.Context, sessionKey string, listingID uuid.UUID) (*usecase.CartView, error) {
	return srv.update(ctx, sessionKey, func(cart *entity.Cart) {
		cart.Remove(listingID)
	})
}

func (srv *cartService) UpdateQuantity(ctx context.Context, sessionKey string, listingID uuid.UUID, quantity int) (*usecase.CartView, error) {
	return srv.update(ctx, sessionKey, func(cart *entity.Cart) {
		cart.UpdateQuantity(listingID, quantity)
	})
}

func (srv *cartService) ClearCart(ctx context.Context, sessionKey string) (*usecase.CartView, error) {
	return srv.update(ctx, sessionKey, func(cart *entity.Cart) {
		cart.Clear()
	})
}

// update applies fn and snapshots the cart while holding the session.
func (srv *cartService) update(ctx context.Context, sessionKey string, fn func(cart *entity.Cart)) (*usecase.CartView, error) {
	var view *usecase.CartView
	err := srv.sessions.With(ctx, sessionKey, func(cart *entity.Cart) error {
		fn(cart)
		view = newCartView(cart, srv.currency)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to access cart session")
	}

	return view, nil
}

func newCartView(cart *entity.Cart, currency string) *usecase.CartView {
	items := cart.Lines()
	if items == nil {
		items = []entity.CartLine{}
	}
	total := cart.TotalPrice()

	return &usecase.CartView{
		Items:        items,
		TotalItems:   cart.TotalItems(),
		TotalPrice:   total,
		DisplayTotal: entity.FormatPrice(currency, total),
	}
}
