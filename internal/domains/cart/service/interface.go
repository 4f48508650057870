package service

import (
	"context"

	"smartshop-backend/internal/domains/cart/model"
)

type ServiceInterface interface {
	// GetCart returns the cart lines joined with catalog products plus
	// a freshly computed pricing snapshot. Lines whose product is not
	// in the session catalog are excluded from the view and the
	// pricing. Read-only.
	GetCart(ctx context.Context) *model.CartResponse

	// AddItem increments the quantity for productID by 1, creating the
	// line if absent. Always succeeds unless a checkout is in flight.
	AddItem(ctx context.Context, productID string) (*model.CartResponse, error)

	// SetQuantity replaces a line's quantity.
	// quantity <= 0 removes the line (same as RemoveItem).
	SetQuantity(ctx context.Context, productID string, quantity int) (*model.CartResponse, error)

	// RemoveItem deletes the line entirely. Missing line is a no-op.
	RemoveItem(ctx context.Context, productID string) (*model.CartResponse, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context) (*model.CartResponse, error)

	// ApplyCoupon validates a submitted code.
	// Returns: normalized code on success.
	// An invalid code returns coupon.ErrInvalidCoupon and revokes any
	// previously applied coupon.
	ApplyCoupon(ctx context.Context, code string) (string, error)

	// Checkout performs the attempt-purchase transition:
	//   Idle -> Evaluating -> Rejected | Committed
	//
	// Rejected (total > balance): nothing mutates, the response
	// carries the shortfall.
	// Committed: debit balance by total, clear cart, clear coupon, all
	// under the service lock so nothing interleaves.
	//
	// A second attempt while one is evaluating fails with
	// model.ErrCheckoutInProgress.
	Checkout(ctx context.Context) (*model.CheckoutResponse, error)
}
