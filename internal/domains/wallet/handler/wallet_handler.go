package handler

import (
	"net/http"

	"smartshop-backend/internal/domains/wallet"
	"smartshop-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the balance ledger
type Handler struct {
	ledger *wallet.Ledger
}

func NewHandler(ledger *wallet.Ledger) *Handler {
	return &Handler{ledger: ledger}
}

// GetBalance handles GET /wallet
func (h *Handler) GetBalance(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"balance": h.ledger.Current(),
	})
}

// AddFunds handles POST /wallet/add-funds
// Credits the fixed increment and returns the new balance.
func (h *Handler) AddFunds(c *gin.Context) {
	balance := h.ledger.AddFunds(c.Request.Context())

	response.Success(c, http.StatusOK, gin.H{
		"balance": balance,
	})
}
