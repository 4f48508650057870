package service

import (
	"sort"
	"strings"

	"smartshop-backend/internal/domains/catalog/model"
)

// CatalogService serves the session's immutable product list. No
// locking needed: the slice never changes after construction, readers
// only ever get copies.
type CatalogService struct {
	products []model.Product
	byID     map[model.ProductID]model.Product
}

func NewCatalogService(products []model.Product) ServiceInterface {
	byID := make(map[model.ProductID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogService{
		products: products,
		byID:     byID,
	}
}

func (s *CatalogService) All() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogService) Find(id model.ProductID) (model.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *CatalogService) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

func (s *CatalogService) Search(params model.SearchParams) []model.Product {
	query := strings.ToLower(strings.TrimSpace(params.Query))
	category := params.Category

	var out []model.Product
	for _, p := range s.products {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	switch params.Sort {
	case model.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case model.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].Price.LessThan(out[i].Price)
		})
	case model.SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].Rating.Rate < out[i].Rating.Rate
		})
	}

	return out
}

func (s *CatalogService) Size() int {
	return len(s.products)
}
