package service

import (
	"context"
	"time"
)

// Cache is a plain key-value store with per-entry TTL, used for the reverse
// token-to-user lookup. Entries are never invalidated explicitly; a cached
// identity can outlive role changes until its TTL runs out. That staleness
// window is an accepted trade-off, not something implementations should fix.
type Cache interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
