package usecase

import (
	"context"

	"crimson/internal/domain/entity"
)

// CheckoutUsecase hands a cart over to the operator's messaging account.
// No order is stored and the cart is left as it is.
type CheckoutUsecase interface {
	// InitiateCheckout builds the order message and deep link. email is the
	// signed-in shopper's address, or empty for guests.
	InitiateCheckout(ctx context.Context, sessionKey, email string) (*entity.OrderHandoff, error)

	// CheckoutQR renders the deep link of a fresh handoff as a PNG QR code.
	CheckoutQR(ctx context.Context, sessionKey, email string) ([]byte, *entity.OrderHandoff, error)
}
