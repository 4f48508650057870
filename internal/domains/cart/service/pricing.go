package service

import (
	catalogModel "smartshop-backend/internal/domains/catalog/model"
	catalogService "smartshop-backend/internal/domains/catalog/service"
	"smartshop-backend/internal/domains/cart/model"

	"github.com/shopspring/decimal"
)

// Quoter is the pricing engine: a pure computation from cart snapshot,
// catalog and coupon rate to a PricingSnapshot. No caching, no side
// effects; carts are tens of lines at most, so recomputing from
// scratch on every call is cheaper than staying correct under
// mutation.
type Quoter struct {
	deliveryFee int64
	shippingFee int64
}

func NewQuoter(deliveryFee, shippingFee int64) *Quoter {
	return &Quoter{
		deliveryFee: deliveryFee,
		shippingFee: shippingFee,
	}
}

// Quote derives subtotal, surcharges, discount and total.
//
// Rounding rules, load-bearing for visible totals:
//  1. Each unit price is rounded to whole BDT before multiplying by
//     quantity, not after summing.
//  2. The discount is round(subtotal * rate), rounded independently.
//
// Lines whose product id is missing from the catalog are skipped, not
// an error. The flat surcharges apply unconditionally, empty cart
// included.
func (q *Quoter) Quote(lines map[catalogModel.ProductID]int, catalog catalogService.ServiceInterface, couponRate float64) model.PricingSnapshot {
	var subtotal int64
	for id, qty := range lines {
		product, ok := catalog.Find(id)
		if !ok {
			continue
		}
		subtotal += product.DisplayPrice() * int64(qty)
	}

	var discount int64
	if couponRate > 0 {
		discount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromFloat(couponRate)).
			Round(0).
			IntPart()
	}

	return model.PricingSnapshot{
		Subtotal:    subtotal,
		DeliveryFee: q.deliveryFee,
		ShippingFee: q.shippingFee,
		Discount:    discount,
		Total:       subtotal + q.deliveryFee + q.shippingFee - discount,
	}
}
