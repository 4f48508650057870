package model

import "errors"

// Checkout error codes surfaced in API responses
const (
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeInvalidCoupon      = "INVALID_COUPON"
	CodeCheckoutInProgress = "CHECKOUT_IN_PROGRESS"
)

var (
	// ErrCheckoutInProgress means a checkout transition is already
	// running; the new attempt (or cart mutation) is rejected and can
	// be retried once the transition completes.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)
