package wallet

import "errors"

var (
	// ErrInsufficientFunds means a debit was larger than the current
	// balance. The ledger stays untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBadAmount means a debit of negative BDT was requested.
	ErrBadAmount = errors.New("amount must be non-negative")
)
