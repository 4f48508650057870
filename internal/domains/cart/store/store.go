package store

import (
	"context"
	"encoding/json"
	"sync"

	catalogModel "smartshop-backend/internal/domains/catalog/model"
	"smartshop-backend/pkg/logger"
	"smartshop-backend/pkg/storage"
)

// StorageKey is where the cart lives in the key-value store, as a JSON
// object of product-id string to positive integer quantity.
const StorageKey = "ss_cart"

// Store owns the cart state: a mapping of product id to a positive
// integer quantity. Invariants: a quantity is always >= 1 (a line that
// would drop to 0 is removed instead) and a product id appears at most
// once. Every mutation writes through to storage immediately.
type Store struct {
	mu    sync.RWMutex
	kv    storage.Store
	items map[catalogModel.ProductID]int
}

// NewStore restores the cart from storage. Malformed persisted JSON is
// recovered silently as an empty cart; entries with a non-positive
// quantity are dropped on load.
func NewStore(ctx context.Context, kv storage.Store) *Store {
	items := make(map[catalogModel.ProductID]int)

	raw, found, err := kv.Get(ctx, StorageKey)
	if err != nil {
		logger.Warn("Failed to read persisted cart, starting empty", err)
	} else if found {
		var persisted map[catalogModel.ProductID]int
		if uerr := json.Unmarshal([]byte(raw), &persisted); uerr != nil {
			logger.Warn("Malformed persisted cart, starting empty", uerr)
		} else {
			for id, qty := range persisted {
				if qty > 0 {
					items[id] = qty
				}
			}
		}
	}

	return &Store{kv: kv, items: items}
}

// AddItem increments the quantity for productID by one, creating the
// line at quantity 1 if absent. Always succeeds.
func (s *Store) AddItem(ctx context.Context, productID catalogModel.ProductID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[productID]++
	s.persist(ctx)
}

// RemoveItem deletes the line entirely, regardless of quantity. A
// missing line is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID catalogModel.ProductID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, productID)
	s.persist(ctx)
}

// SetQuantity replaces the line's quantity. A quantity <= 0 removes
// the line, same as RemoveItem.
func (s *Store) SetQuantity(ctx context.Context, productID catalogModel.ProductID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		delete(s.items, productID)
	} else {
		s.items[productID] = quantity
	}
	s.persist(ctx)
}

// Clear empties the cart. Used by checkout on commit.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[catalogModel.ProductID]int)
	s.persist(ctx)
}

// Snapshot returns a copy of the current mapping for read-only
// consumption by the pricing engine and presentation.
func (s *Store) Snapshot() map[catalogModel.ProductID]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[catalogModel.ProductID]int, len(s.items))
	for id, qty := range s.items {
		out[id] = qty
	}
	return out
}

// ItemsCount sums the quantities across all lines.
func (s *Store) ItemsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, qty := range s.items {
		count += qty
	}
	return count
}

// persist writes through to storage. Failures are logged, not
// propagated: in-memory state stays authoritative and the loss window
// is bounded to one mutation.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		logger.Error("Failed to marshal cart", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		logger.Warn("Failed to persist cart", err)
	}
}
