package handler

import (
	"net/http"

	"smartshop-backend/internal/domains/review/service"
	"smartshop-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.ReviewService
}

func NewHandler(service *service.ReviewService) *Handler {
	return &Handler{service: service}
}

// ListReviews handles GET /reviews
func (h *Handler) ListReviews(c *gin.Context) {
	reviews := h.service.All()

	response.Success(c, http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
