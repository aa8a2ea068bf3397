// Package storage provides the key-value persistence layer. Collections are
// stored as whole JSON values under fixed string keys: every mutation
// rewrites the entire value, a missing or corrupt value reads as an empty
// collection.
//
// Two scopes exist: a durable SQLite-backed store that survives restarts,
// and an in-memory store whose contents end with the process. Which scope a
// session record lands in is decided once, at login time.
package storage

import "context"

// Store describes a flat key-value store holding JSON-encoded values.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the entire value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// SetMulti writes several keys at once. Backends that support it apply
	// the writes atomically.
	SetMulti(ctx context.Context, values map[string][]byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}
