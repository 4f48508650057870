package model

import (
	"encoding/json"
	"strconv"
	"strings"

	catalogModel "smartshop-backend/internal/domains/catalog/model"
)

// Quantity is a cart quantity as submitted by the client. The
// storefront's quantity inputs are free text, so it decodes from a
// JSON number or string; anything non-numeric coerces to 0, which the
// cart store treats as "remove the line".
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*q = Quantity(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*q = Quantity(n)
			return nil
		}
	}

	*q = 0
	return nil
}

// AddItemRequest adds one unit of a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest replaces a line's quantity outright.
type UpdateQuantityRequest struct {
	Quantity Quantity `json:"quantity"`
}

// ApplyCouponRequest submits a coupon code.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// PricingSnapshot is the derived pricing of the current cart. It is
// recomputed from scratch on every read and never persisted. All
// figures are whole BDT.
type PricingSnapshot struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	ShippingFee int64 `json:"shipping_fee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// LineResponse is one cart line joined with its catalog product.
type LineResponse struct {
	ProductID catalogModel.ProductID `json:"product_id"`
	Title     string                 `json:"title"`
	Image     string                 `json:"image"`
	UnitPrice int64                  `json:"unit_price"`
	Quantity  int                    `json:"quantity"`
	LineTotal int64                  `json:"line_total"`
}

// CartResponse is the full cart view: lines, derived pricing, coupon
// state and the balance the checkout will be gated on.
type CartResponse struct {
	Items         []LineResponse  `json:"items"`
	ItemsCount    int             `json:"items_count"`
	Pricing       PricingSnapshot `json:"pricing"`
	AppliedCoupon *string         `json:"applied_coupon,omitempty"`
	Balance       int64           `json:"balance"`
}

// CheckoutResponse is the outcome contract of a checkout attempt:
// {ok: true, total} on commit, {ok: false, shortfall} on rejection.
type CheckoutResponse struct {
	Ok        bool  `json:"ok"`
	Total     int64 `json:"total,omitempty"`
	Shortfall int64 `json:"shortfall,omitempty"`
}
