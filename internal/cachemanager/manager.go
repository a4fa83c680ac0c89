// Package cachemanager provides a generic TTL cache used for memoizing
// rendered feed rows.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed view over a TTL cache.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
