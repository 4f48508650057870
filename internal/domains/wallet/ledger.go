package wallet

import (
	"context"
	"strconv"
	"sync"

	"smartshop-backend/pkg/logger"
	"smartshop-backend/pkg/storage"
)

// StorageKey is where the balance lives in the key-value store, as a
// decimal string of whole BDT.
const StorageKey = "ss_balance"

// Ledger is the single spendable balance. It is the only component
// allowed to mutate the balance; everything else reads Current().
// Every mutation is written through to storage immediately.
type Ledger struct {
	mu        sync.Mutex
	store     storage.Store
	balance   int64
	increment int64
}

// NewLedger restores the balance from storage, falling back to
// startingBalance when nothing (or garbage) is persisted.
func NewLedger(ctx context.Context, store storage.Store, startingBalance, increment int64) *Ledger {
	balance := startingBalance

	raw, found, err := store.Get(ctx, StorageKey)
	if err != nil {
		logger.Warn("Failed to read persisted balance, using starting balance", err)
	} else if found {
		parsed, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			logger.Warn("Malformed persisted balance, using starting balance", perr)
		} else {
			balance = parsed
		}
	}

	l := &Ledger{
		store:     store,
		balance:   balance,
		increment: increment,
	}
	l.persist(ctx)
	return l
}

// Current returns the spendable balance.
func (l *Ledger) Current() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// AddFunds credits the configured increment and returns the new
// balance. Always succeeds.
func (l *Ledger) AddFunds(ctx context.Context) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.balance += l.increment
	l.persist(ctx)
	return l.balance
}

// Debit subtracts amount from the balance. Fails with
// ErrInsufficientFunds when amount exceeds the balance; the caller is
// expected to have validated sufficiency, but the check here is the
// hard invariant.
func (l *Ledger) Debit(ctx context.Context, amount int64) error {
	if amount < 0 {
		return ErrBadAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if amount > l.balance {
		return ErrInsufficientFunds
	}

	l.balance -= amount
	l.persist(ctx)
	return nil
}

// persist writes through to storage. A failed write is logged and not
// propagated: the in-memory state stays authoritative and the loss
// window is bounded to this one mutation.
func (l *Ledger) persist(ctx context.Context) {
	if err := l.store.Set(ctx, StorageKey, strconv.FormatInt(l.balance, 10)); err != nil {
		logger.Warn("Failed to persist balance", err)
	}
}
