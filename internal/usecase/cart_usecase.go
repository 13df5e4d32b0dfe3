package usecase

import (
	"context"

	"crimson/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is a snapshot of a cart with its derived totals.
type CartView struct {
	Items        []entity.CartLine `json:"items"`
	TotalItems   int               `json:"total_items"`
	TotalPrice   decimal.Decimal   `json:"total_price"`
	DisplayTotal string            `json:"display_total"`
}

// CartUsecase operates on the cart of a session. sessionKey is the user id
// of a signed-in shopper or the guest session id.
type CartUsecase interface {
	GetCart(ctx context.Context, sessionKey string) (*CartView, error)

	// AddItem adds an approved listing, or bumps its quantity.
	AddItem(ctx context.Context, sessionKey string, listingID uuid.UUID) (*CartView, error)
	RemoveItem(ctx context.Context, sessionKey string, listingID uuid.UUID) (*CartView, error)

	// UpdateQuantity removes the line when quantity is zero or less.
	UpdateQuantity(ctx context.Context, sessionKey string, listingID uuid.UUID, quantity int) (*CartView, error)
	ClearCart(ctx context.Context, sessionKey string) (*CartView, error)
}
