package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalogModel "smartshop-backend/internal/domains/catalog/model"
	catalogService "smartshop-backend/internal/domains/catalog/service"
	cartService "smartshop-backend/internal/domains/cart/service"
	cartStore "smartshop-backend/internal/domains/cart/store"
	"smartshop-backend/internal/domains/coupon"
	"smartshop-backend/internal/domains/wallet"
	infraStorage "smartshop-backend/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, balance int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	kv := infraStorage.NewMemoryStore()
	ledger := wallet.NewLedger(ctx, kv, balance, 1000)

	catalog := catalogService.NewCatalogService([]catalogModel.Product{
		{ID: "7", Title: "Classic Tee", Price: decimal.NewFromFloat(109.99), Category: "men's clothing"},
	})
	store := cartStore.NewStore(ctx, kv)
	coupons := coupon.NewValidator("SMART10", 0.10)
	svc := cartService.NewCartService(store, catalog, ledger, coupons, cartService.NewQuoter(50, 30))

	h := NewHandler(svc)
	router := gin.New()
	router.GET("/cart", h.GetCart)
	router.POST("/cart/items", h.AddItem)
	router.PUT("/cart/items/:product_id", h.UpdateItemQuantity)
	router.DELETE("/cart/items/:product_id", h.RemoveItem)
	router.POST("/cart/coupon", h.ApplyCoupon)
	router.POST("/cart/checkout", h.Checkout)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t, 1000)

	// add one unit, bump to 3 via a string quantity (free-text input)
	w := doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id": "7"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/cart/items/7", `{"quantity": "3"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ItemsCount int `json:"items_count"`
			Pricing    struct {
				Subtotal int64 `json:"subtotal"`
				Total    int64 `json:"total"`
			} `json:"pricing"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 3, envelope.Data.ItemsCount)
	assert.EqualValues(t, 330, envelope.Data.Pricing.Subtotal)
	assert.EqualValues(t, 410, envelope.Data.Pricing.Total)
}

func TestCheckoutSuccessContract(t *testing.T) {
	router := newTestRouter(t, 1000)

	doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id": "7"}`)
	w := doJSON(t, router, http.MethodPost, "/cart/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Ok    bool  `json:"ok"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Ok)
	assert.EqualValues(t, 190, envelope.Data.Total) // 110 + 50 + 30
}

func TestCheckoutShortfallContract(t *testing.T) {
	router := newTestRouter(t, 100)

	doJSON(t, router, http.MethodPut, "/cart/items/7", `{"quantity": 3}`)
	w := doJSON(t, router, http.MethodPost, "/cart/checkout", "")
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details struct {
				Ok        bool  `json:"ok"`
				Shortfall int64 `json:"shortfall"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "INSUFFICIENT_FUNDS", envelope.Error.Code)
	assert.False(t, envelope.Error.Details.Ok)
	assert.EqualValues(t, 310, envelope.Error.Details.Shortfall)

	// the cart survives a rejected checkout
	w = doJSON(t, router, http.MethodGet, "/cart", "")
	var cart struct {
		Data struct {
			ItemsCount int `json:"items_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, 3, cart.Data.ItemsCount)
}

func TestApplyCouponOverHTTP(t *testing.T) {
	router := newTestRouter(t, 1000)

	w := doJSON(t, router, http.MethodPost, "/cart/coupon", `{"code": "smart10"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart/coupon", `{"code": "WRONG"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
