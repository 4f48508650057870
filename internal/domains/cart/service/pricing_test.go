package service

import (
	"testing"

	catalogModel "smartshop-backend/internal/domains/catalog/model"
	catalogService "smartshop-backend/internal/domains/catalog/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCatalog() catalogService.ServiceInterface {
	return catalogService.NewCatalogService([]catalogModel.Product{
		{
			ID:       "7",
			Title:    "Classic Tee",
			Price:    decimal.NewFromFloat(109.99),
			Category: "men's clothing",
			Rating:   catalogModel.Rating{Rate: 4.1, Count: 259},
		},
		{
			ID:       "9",
			Title:    "Portable Drive",
			Price:    decimal.NewFromFloat(64.49),
			Category: "electronics",
			Rating:   catalogModel.Rating{Rate: 3.3, Count: 203},
		},
	})
}

func TestQuoteEmptyCartStillCarriesSurcharges(t *testing.T) {
	q := NewQuoter(50, 30)

	snap := q.Quote(nil, testCatalog(), 0)

	assert.EqualValues(t, 0, snap.Subtotal)
	assert.EqualValues(t, 50, snap.DeliveryFee)
	assert.EqualValues(t, 30, snap.ShippingFee)
	assert.EqualValues(t, 0, snap.Discount)
	assert.EqualValues(t, 80, snap.Total)
}

func TestQuoteRoundsUnitPriceBeforeMultiplying(t *testing.T) {
	q := NewQuoter(50, 30)

	// 109.99 rounds to 110 per unit, then x3 = 330. Rounding after
	// summing would give 329 (109.99*3 = 329.97) instead.
	snap := q.Quote(map[catalogModel.ProductID]int{"7": 3}, testCatalog(), 0)

	assert.EqualValues(t, 330, snap.Subtotal)
	assert.EqualValues(t, 410, snap.Total)
}

func TestQuoteDiscountRoundedIndependently(t *testing.T) {
	q := NewQuoter(50, 30)

	// subtotal 330, 10% = 33
	snap := q.Quote(map[catalogModel.ProductID]int{"7": 3}, testCatalog(), 0.10)

	assert.EqualValues(t, 330, snap.Subtotal)
	assert.EqualValues(t, 33, snap.Discount)
	assert.EqualValues(t, 377, snap.Total)
}

func TestQuoteSkipsUnknownProducts(t *testing.T) {
	q := NewQuoter(50, 30)

	lines := map[catalogModel.ProductID]int{
		"7":       2, // 110 * 2 = 220
		"unknown": 5, // silently excluded
	}
	snap := q.Quote(lines, testCatalog(), 0)

	assert.EqualValues(t, 220, snap.Subtotal)
	assert.EqualValues(t, 300, snap.Total)
}

func TestQuoteTotalIdentity(t *testing.T) {
	q := NewQuoter(50, 30)

	lines := map[catalogModel.ProductID]int{"7": 1, "9": 2}
	for _, rate := range []float64{0, 0.10, 0.25} {
		snap := q.Quote(lines, testCatalog(), rate)
		assert.Equal(t, snap.Subtotal+snap.DeliveryFee+snap.ShippingFee-snap.Discount, snap.Total)
	}
}

func TestQuoteIsIdempotent(t *testing.T) {
	q := NewQuoter(50, 30)
	lines := map[catalogModel.ProductID]int{"7": 3, "9": 1}

	first := q.Quote(lines, testCatalog(), 0.10)
	second := q.Quote(lines, testCatalog(), 0.10)

	assert.Equal(t, first, second)
}

func TestQuoteHalfRoundsUp(t *testing.T) {
	catalog := catalogService.NewCatalogService([]catalogModel.Product{
		{ID: "1", Title: "Half", Price: decimal.NewFromFloat(2.5)},
	})
	q := NewQuoter(0, 0)

	snap := q.Quote(map[catalogModel.ProductID]int{"1": 1}, catalog, 0)

	assert.EqualValues(t, 3, snap.Subtotal)
}
