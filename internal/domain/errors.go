package domain

import "errors"

var (
	// ErrCacheMiss is returned when a key is absent from the cache or expired
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrAPIFailure is returned when the Scope4 API request fails before a response arrives
	ErrAPIFailure = errors.New("scope4 API request failed")
)
