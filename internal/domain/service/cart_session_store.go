package service

import (
	"context"

	"crimson/internal/domain/entity"
)

// CartSessionStore holds the session-scoped carts. Carts live only as long as
// their session and are never written to the database.
type CartSessionStore interface {
	// With runs fn with exclusive access to the cart of sessionKey, starting
	// from an empty cart on first use. A cart left empty by fn is not kept.
	With(ctx context.Context, sessionKey string, fn func(cart *entity.Cart) error) error

	// Drop ends a session and discards its cart.
	Drop(ctx context.Context, sessionKey string)
}
