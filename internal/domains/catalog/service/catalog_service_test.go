package service

import (
	"testing"

	"smartshop-backend/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: "1", Title: "Fjallraven Backpack", Price: decimal.NewFromFloat(109.95), Category: "men's clothing", Rating: model.Rating{Rate: 3.9, Count: 120}},
		{ID: "2", Title: "Mens Casual T-Shirt", Price: decimal.NewFromFloat(22.3), Category: "men's clothing", Rating: model.Rating{Rate: 4.1, Count: 259}},
		{ID: "3", Title: "Portable External Drive", Price: decimal.NewFromFloat(64), Category: "electronics", Rating: model.Rating{Rate: 3.3, Count: 203}},
		{ID: "4", Title: "Gold Petite Micropave", Price: decimal.NewFromFloat(168), Category: "jewelery", Rating: model.Rating{Rate: 3.9, Count: 70}},
	}
}

func TestFind(t *testing.T) {
	s := NewCatalogService(fixtureProducts())

	p, ok := s.Find("3")
	require.True(t, ok)
	assert.Equal(t, "Portable External Drive", p.Title)

	_, ok = s.Find("999")
	assert.False(t, ok)
}

func TestCategoriesDedupedInFirstSeenOrder(t *testing.T) {
	s := NewCatalogService(fixtureProducts())

	assert.Equal(t, []string{"men's clothing", "electronics", "jewelery"}, s.Categories())
}

func TestSearch(t *testing.T) {
	s := NewCatalogService(fixtureProducts())

	cases := []struct {
		name    string
		params  model.SearchParams
		wantIDs []model.ProductID
	}{
		{"no filters keeps catalog order", model.SearchParams{}, []model.ProductID{"1", "2", "3", "4"}},
		{"query is case-insensitive", model.SearchParams{Query: "mens"}, []model.ProductID{"2"}},
		{"category filter", model.SearchParams{Category: "men's clothing"}, []model.ProductID{"1", "2"}},
		{"category all", model.SearchParams{Category: "all"}, []model.ProductID{"1", "2", "3", "4"}},
		{"price ascending", model.SearchParams{Sort: model.SortPriceAsc}, []model.ProductID{"2", "3", "1", "4"}},
		{"price descending", model.SearchParams{Sort: model.SortPriceDesc}, []model.ProductID{"4", "1", "3", "2"}},
		{"rating descending", model.SearchParams{Sort: model.SortRatingDesc}, []model.ProductID{"2", "1", "4", "3"}},
		{"query plus category", model.SearchParams{Query: "drive", Category: "electronics"}, []model.ProductID{"3"}},
		{"no match", model.SearchParams{Query: "zzz"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Search(tc.params)
			ids := make([]model.ProductID, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tc.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestEmptyCatalog(t *testing.T) {
	s := NewCatalogService(nil)

	assert.Zero(t, s.Size())
	assert.Empty(t, s.All())
	assert.Empty(t, s.Search(model.SearchParams{Query: "anything"}))
}
