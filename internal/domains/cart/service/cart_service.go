package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"smartshop-backend/internal/domains/cart/model"
	cartStore "smartshop-backend/internal/domains/cart/store"
	catalogModel "smartshop-backend/internal/domains/catalog/model"
	catalogService "smartshop-backend/internal/domains/catalog/service"
	"smartshop-backend/internal/domains/coupon"
	"smartshop-backend/internal/domains/wallet"
	"smartshop-backend/pkg/logger"
)

// checkoutState is the explicit in-progress guard. The service mutex
// already serializes everything, but the flag keeps the design correct
// if the locking is ever loosened.
type checkoutState int

const (
	stateIdle checkoutState = iota
	stateEvaluating
)

type CartService struct {
	mu    sync.Mutex
	state checkoutState

	store   *cartStore.Store
	catalog catalogService.ServiceInterface
	ledger  *wallet.Ledger
	coupons *coupon.Validator
	quoter  *Quoter
}

func NewCartService(
	store *cartStore.Store,
	catalog catalogService.ServiceInterface,
	ledger *wallet.Ledger,
	coupons *coupon.Validator,
	quoter *Quoter,
) ServiceInterface {
	return &CartService{
		store:   store,
		catalog: catalog,
		ledger:  ledger,
		coupons: coupons,
		quoter:  quoter,
	}
}

func (s *CartService) GetCart(_ context.Context) *model.CartResponse {
	return s.buildResponse()
}

func (s *CartService) AddItem(ctx context.Context, productID string) (*model.CartResponse, error) {
	s.mu.Lock()
	if s.state != stateIdle {
		s.mu.Unlock()
		return nil, model.ErrCheckoutInProgress
	}
	s.store.AddItem(ctx, catalogModel.ProductID(productID))
	s.mu.Unlock()

	return s.buildResponse(), nil
}

func (s *CartService) SetQuantity(ctx context.Context, productID string, quantity int) (*model.CartResponse, error) {
	s.mu.Lock()
	if s.state != stateIdle {
		s.mu.Unlock()
		return nil, model.ErrCheckoutInProgress
	}
	s.store.SetQuantity(ctx, catalogModel.ProductID(productID), quantity)
	s.mu.Unlock()

	return s.buildResponse(), nil
}

func (s *CartService) RemoveItem(ctx context.Context, productID string) (*model.CartResponse, error) {
	s.mu.Lock()
	if s.state != stateIdle {
		s.mu.Unlock()
		return nil, model.ErrCheckoutInProgress
	}
	s.store.RemoveItem(ctx, catalogModel.ProductID(productID))
	s.mu.Unlock()

	return s.buildResponse(), nil
}

func (s *CartService) ClearCart(ctx context.Context) (*model.CartResponse, error) {
	s.mu.Lock()
	if s.state != stateIdle {
		s.mu.Unlock()
		return nil, model.ErrCheckoutInProgress
	}
	s.store.Clear(ctx)
	s.mu.Unlock()

	return s.buildResponse(), nil
}

func (s *CartService) ApplyCoupon(_ context.Context, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateIdle {
		return "", model.ErrCheckoutInProgress
	}

	applied, err := s.coupons.Apply(code)
	if err != nil {
		return "", err
	}

	logger.Info("Coupon applied", map[string]interface{}{"code": applied})
	return applied, nil
}

func (s *CartService) Checkout(ctx context.Context) (*model.CheckoutResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateIdle {
		return nil, model.ErrCheckoutInProgress
	}
	s.state = stateEvaluating
	defer func() { s.state = stateIdle }()

	// Evaluating: one fresh quote against current cart, catalog and
	// coupon state.
	quote := s.quoter.Quote(s.store.Snapshot(), s.catalog, s.coupons.Rate())
	balance := s.ledger.Current()

	// Rejected: no mutation at all, caller gets the shortfall.
	if quote.Total > balance {
		logger.Info("Checkout rejected", map[string]interface{}{
			"total":     quote.Total,
			"balance":   balance,
			"shortfall": quote.Total - balance,
		})
		return &model.CheckoutResponse{
			Ok:        false,
			Shortfall: quote.Total - balance,
		}, nil
	}

	// Committed: debit, clear cart, clear coupon. The service lock is
	// held for all three, so nothing interleaves. Debit was validated
	// against this same total, but its own check stays the hard
	// invariant.
	if err := s.ledger.Debit(ctx, quote.Total); err != nil {
		return nil, fmt.Errorf("checkout debit: %w", err)
	}
	s.store.Clear(ctx)
	s.coupons.Clear()

	logger.Info("Checkout committed", map[string]interface{}{"total": quote.Total})
	return &model.CheckoutResponse{
		Ok:    true,
		Total: quote.Total,
	}, nil
}

// buildResponse joins the cart snapshot with the catalog and computes
// pricing. Lines referencing an id absent from the catalog are
// silently excluded.
func (s *CartService) buildResponse() *model.CartResponse {
	snapshot := s.store.Snapshot()

	items := make([]model.LineResponse, 0, len(snapshot))
	itemsCount := 0
	for id, qty := range snapshot {
		product, ok := s.catalog.Find(id)
		if !ok {
			continue
		}
		unitPrice := product.DisplayPrice()
		items = append(items, model.LineResponse{
			ProductID: id,
			Title:     product.Title,
			Image:     product.Image,
			UnitPrice: unitPrice,
			Quantity:  qty,
			LineTotal: unitPrice * int64(qty),
		})
		itemsCount += qty
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})

	resp := &model.CartResponse{
		Items:      items,
		ItemsCount: itemsCount,
		Pricing:    s.quoter.Quote(snapshot, s.catalog, s.coupons.Rate()),
		Balance:    s.ledger.Current(),
	}
	if code, ok := s.coupons.Applied(); ok {
		resp.AppliedCoupon = &code
	}
	return resp
}
