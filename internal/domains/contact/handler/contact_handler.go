package handler

import (
	"net/http"
	"strings"

	"smartshop-backend/internal/domains/contact"
	"smartshop-backend/internal/shared/response"
	"smartshop-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// SubmitMessage handles POST /contact
// There is no mail transport behind this; an accepted submission is
// logged and acknowledged, which is all the storefront needs.
func (h *Handler) SubmitMessage(c *gin.Context) {
	var req contact.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Please fill all fields", err)
		return
	}

	logger.Info("Contact message received", map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
	})

	response.Success(c, http.StatusAccepted, gin.H{
		"message": "Thanks for reaching out, we will get back to you soon",
	})
}
