package handler

import (
	"net/http"

	"smartshop-backend/internal/domains/catalog/model"
	"smartshop-backend/internal/domains/catalog/service"
	"smartshop-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the product catalog
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListProducts handles GET /products?q=&category=&sort=
// Returns the filtered, sorted product list. An empty catalog is a
// valid response, not an error.
func (h *Handler) ListProducts(c *gin.Context) {
	params := model.SearchParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	products := h.service.Search(params)
	if products == nil {
		products = []model.Product{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id := model.ProductID(c.Param("id"))

	product, ok := h.service.Find(id)
	if !ok {
		response.NotFound(c, "Product not found")
		return
	}

	response.Success(c, http.StatusOK, product)
}

// ListCategories handles GET /products/categories
func (h *Handler) ListCategories(c *gin.Context) {
	cats := h.service.Categories()
	if cats == nil {
		cats = []string{}
	}

	response.Success(c, http.StatusOK, gin.H{"categories": cats})
}
