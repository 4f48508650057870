package wallet

import (
	"context"
	"testing"

	infraStorage "smartshop-backend/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartsWithDefaultWhenNothingPersisted(t *testing.T) {
	ctx := context.Background()
	kv := infraStorage.NewMemoryStore()

	l := NewLedger(ctx, kv, 1000, 1000)
	assert.EqualValues(t, 1000, l.Current())

	// the starting balance is written through immediately
	raw, found, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "1000", raw)
}

func TestRestoresPersistedBalance(t *testing.T) {
	ctx := context.Background()
	kv := infraStorage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, StorageKey, "420"))

	l := NewLedger(ctx, kv, 1000, 1000)
	assert.EqualValues(t, 420, l.Current())
}

func TestMalformedPersistedBalanceFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := infraStorage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, StorageKey, "not-a-number"))

	l := NewLedger(ctx, kv, 1000, 1000)
	assert.EqualValues(t, 1000, l.Current())
}

func TestAddFundsTwice(t *testing.T) {
	ctx := context.Background()
	kv := infraStorage.NewMemoryStore()

	l := NewLedger(ctx, kv, 1000, 1000)
	l.AddFunds(ctx)
	balance := l.AddFunds(ctx)

	assert.EqualValues(t, 3000, balance)
	assert.EqualValues(t, 3000, l.Current())

	raw, _, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "3000", raw)
}

func TestDebit(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(ctx, infraStorage.NewMemoryStore(), 1000, 1000)

	require.NoError(t, l.Debit(ctx, 80))
	assert.EqualValues(t, 920, l.Current())

	// zero is a valid debit
	require.NoError(t, l.Debit(ctx, 0))
	assert.EqualValues(t, 920, l.Current())

	assert.ErrorIs(t, l.Debit(ctx, -5), ErrBadAmount)
}

func TestDebitInsufficientFundsMutatesNothing(t *testing.T) {
	ctx := context.Background()
	kv := infraStorage.NewMemoryStore()
	l := NewLedger(ctx, kv, 100, 1000)

	err := l.Debit(ctx, 410)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.EqualValues(t, 100, l.Current())

	raw, _, gerr := kv.Get(ctx, StorageKey)
	require.NoError(t, gerr)
	assert.Equal(t, "100", raw)
}
