package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductID is the stable identifier of a catalog product. Upstream
// catalogs serve it as a bare number, the cart keys it as a string, so
// it decodes from either.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*id = ProductID(num.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("product id must be a number or string: %w", err)
	}
	*id = ProductID(s)
	return nil
}

// Product is a catalog entry, read-only for the session.
type Product struct {
	ID       ProductID       `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
	Rating   Rating          `json:"rating"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// DisplayPrice is the whole-BDT unit price shown to the user and used
// by the pricing engine. Rounding happens per unit, before any
// quantity multiplication.
func (p *Product) DisplayPrice() int64 {
	return p.Price.Round(0).IntPart()
}

// SearchParams narrows and orders the catalog listing.
type SearchParams struct {
	Query    string // case-insensitive substring of the title
	Category string // exact category, "" or "all" for everything
	Sort     string // price-asc, price-desc, rating-desc
}

const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)
