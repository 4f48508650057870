package storage

import "context"

// Store defines the contract for the durable key-value layer backing
// cart and balance snapshots. It deliberately mirrors a browser
// localStorage surface: string keys, string values, last write wins.
//
// Implementations: Redis (production), in-memory (fallback + tests).
type Store interface {
	// Get returns the value for key.
	// Returns: (value, found, error)
	//   - found = false: key absent, value is ""
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error

	// Close releases the underlying connection, if any.
	Close() error
}
