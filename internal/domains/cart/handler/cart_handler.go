package handler

import (
	"errors"
	"fmt"
	"net/http"

	"smartshop-backend/internal/domains/cart/model"
	"smartshop-backend/internal/domains/cart/service"
	"smartshop-backend/internal/domains/coupon"
	"smartshop-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the cart and checkout
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetCart handles GET /cart
// Returns cart lines, pricing snapshot, coupon state and balance.
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.GetCart(c.Request.Context()))
}

// AddItem handles POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id is required")
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), req.ProductID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// UpdateItemQuantity handles PUT /cart/items/:product_id
// A non-numeric or non-positive quantity removes the line.
func (h *Handler) UpdateItemQuantity(c *gin.Context) {
	productID := c.Param("product_id")

	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.service.SetQuantity(c.Request.Context(), productID, int(req.Quantity))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/items/:product_id
func (h *Handler) RemoveItem(c *gin.Context) {
	cart, err := h.service.RemoveItem(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ClearCart handles DELETE /cart
func (h *Handler) ClearCart(c *gin.Context) {
	cart, err := h.service.ClearCart(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ApplyCoupon handles POST /cart/coupon
// An invalid code clears any previously applied coupon.
func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req model.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	applied, err := h.service.ApplyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, coupon.ErrInvalidCoupon) {
			response.ErrorResponse(c, http.StatusUnprocessableEntity,
				model.CodeInvalidCoupon, "Invalid coupon code")
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applied_coupon": applied,
		"cart":           h.service.GetCart(c.Request.Context()),
	})
}

// Checkout handles POST /cart/checkout
// Success: 200 {ok: true, total}. Insufficient balance: 402 with
// {ok: false, shortfall} in the error details.
func (h *Handler) Checkout(c *gin.Context) {
	outcome, err := h.service.Checkout(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if !outcome.Ok {
		response.ErrorWithDetails(c, http.StatusPaymentRequired,
			model.CodeInsufficientFunds,
			fmt.Sprintf("Not enough balance, you need %d BDT more", outcome.Shortfall),
			outcome)
		return
	}

	response.Success(c, http.StatusOK, outcome)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrCheckoutInProgress) {
		response.ErrorResponse(c, http.StatusConflict,
			model.CodeCheckoutInProgress, "Checkout in progress, try again")
		return
	}
	response.InternalServerError(c, err.Error())
}
