package coupon

import (
	"errors"
	"strings"
	"sync"
)

// ErrInvalidCoupon means the submitted code does not match the
// configured code. Any previously applied coupon is revoked when this
// is returned.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Validator checks submitted codes against the single configured
// coupon and tracks which code is currently applied. There is no
// expiry, no usage limit and no stacking: one static code, one rate.
type Validator struct {
	mu        sync.Mutex
	validCode string
	rate      float64
	applied   string // "" when no coupon is applied
}

func NewValidator(validCode string, rate float64) *Validator {
	return &Validator{
		validCode: strings.ToUpper(strings.TrimSpace(validCode)),
		rate:      rate,
	}
}

// Apply normalizes the submitted code (trim, uppercase) and matches it
// against the configured code. A match applies it and returns the
// normalized code. A miss clears whatever was applied before and
// returns ErrInvalidCoupon: an invalid resubmission revokes an earlier
// valid coupon.
func (v *Validator) Apply(submitted string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(submitted))

	v.mu.Lock()
	defer v.mu.Unlock()

	if code != v.validCode {
		v.applied = ""
		return "", ErrInvalidCoupon
	}

	v.applied = code
	return code, nil
}

// Applied reports the currently applied code, if any.
func (v *Validator) Applied() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.applied, v.applied != ""
}

// Rate returns the discount rate on the subtotal, 0 when no coupon is
// applied.
func (v *Validator) Rate() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.applied == "" {
		return 0
	}
	return v.rate
}

// Clear drops the applied coupon. Used by checkout on commit.
func (v *Validator) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applied = ""
}
