// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory or SQLite. The HTTP layer uses it
// to keep fetched discovery documents between calls.
//
// Example usage:
//
//	err := cache.Set(ctx, "fetch:https://example.org/rsd.xml", body, 10*time.Minute)
//
//	data, err := cache.Get(ctx, "fetch:https://example.org/rsd.xml")
//	if errors.Is(err, coreerrors.ErrCacheMiss) {
//		// fetch from origin
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss from core/errors when the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}