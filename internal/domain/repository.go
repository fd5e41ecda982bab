package domain

import (
	"context"
	"time"
)

// CacheRepository is the get/put contract of the external key-value cache.
// Get returns ErrCacheMiss for absent or expired keys. Values are opaque
// blobs owned by the caller; the store never inspects them.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// SearchClient performs one Scope4 search request and reports the raw
// response. Only transport failures (timeouts, DNS, connection resets)
// surface as errors; any HTTP status is a normal result for the classifier
// to judge.
type SearchClient interface {
	Search(ctx context.Context, params QueryParameters) (*RawResponse, error)
}
