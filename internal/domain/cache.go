package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the key/value store.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key or hash field does not exist.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the key/value port backing flow state and visitor storage.
type Cache interface {
	// Get returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites key. An expiration of 0 keeps the key indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete does not fail when the key is absent.
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error

	// HGet returns ErrCacheMiss if the hash or the field is missing.
	HGet(ctx context.Context, key, field string) (string, error)

	HSet(ctx context.Context, key string, field string, value string) error

	Expire(ctx context.Context, key string, expiration time.Duration) error
}
