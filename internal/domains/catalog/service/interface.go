package service

import (
	"smartshop-backend/internal/domains/catalog/model"
)

type ServiceInterface interface {
	// All returns every product in catalog order.
	All() []model.Product

	// Find resolves a product by id.
	// Returns: (product, found). Lines referencing unknown ids are the
	// caller's problem to skip.
	Find(id model.ProductID) (model.Product, bool)

	// Categories returns the distinct categories in first-seen order.
	Categories() []string

	// Search filters and orders the catalog per params.
	Search(params model.SearchParams) []model.Product

	// Size reports the number of products loaded for the session.
	Size() int
}
