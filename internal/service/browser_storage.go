package service

import (
	"context"
	"errors"
	"time"

	"career-counsel/internal/cache"
	"career-counsel/internal/domain"
	"career-counsel/internal/logger"
)

// BrowserStorage is a small per-visitor key/value store that outlives a
// single flow, the server-side counterpart of the browser's local storage.
type BrowserStorage interface {
	SetItem(ctx context.Context, visitorID, key, value string) error
	// GetItem returns "" without error when the key was never set.
	GetItem(ctx context.Context, visitorID, key string) (string, error)
}

type cacheBrowserStorage struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewBrowserStorage keeps each visitor's items in one hash. A nil cache
// yields a storage that remembers nothing.
func NewBrowserStorage(cache domain.Cache, ttl time.Duration) BrowserStorage {
	if cache == nil {
		logger.Get().Warn("BrowserStorage initialized with nil cache. Storage will be no-op.")
		return noopBrowserStorage{}
	}
	return &cacheBrowserStorage{cache: cache, ttl: ttl}
}

func (s *cacheBrowserStorage) SetItem(ctx context.Context, visitorID, key, value string) error {
	hashKey := cache.VisitorStorageKey(visitorID)
	if err := s.cache.HSet(ctx, hashKey, key, value); err != nil {
		return err
	}
	if s.ttl > 0 {
		return s.cache.Expire(ctx, hashKey, s.ttl)
	}
	return nil
}

func (s *cacheBrowserStorage) GetItem(ctx context.Context, visitorID, key string) (string, error) {
	val, err := s.cache.HGet(ctx, cache.VisitorStorageKey(visitorID), key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

type noopBrowserStorage struct{}

func (noopBrowserStorage) SetItem(context.Context, string, string, string) error { return nil }

func (noopBrowserStorage) GetItem(context.Context, string, string) (string, error) { return "", nil }
