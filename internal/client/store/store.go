// Package store is the persistence boundary of the session system. It defines
// the capability interface durable key-value drivers implement and a typed
// credential layer on top of it.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound reports a key with no stored value.
	ErrNotFound = errors.New("store: not found")
)

// Keys persisted by the credential layer. Drivers treat keys as opaque.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserProfile  = "user_profile"
)

// KV is the capability interface for credential persistence. Implementations
// must be safe for concurrent use. Platform selection (sqlite on device,
// memory for tests) happens once at composition time, never at call sites.
type KV interface {
	// Get returns the stored value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every stored key. Callers never observe a state where
	// only some keys are gone: the driver performs the removal atomically.
	Clear(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
