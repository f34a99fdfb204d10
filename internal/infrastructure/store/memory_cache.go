package store

import (
	"context"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// MemoryBlogCache is the in-process implementation of the lookup cache:
// per-entry TTL plus an LRU capacity bound, so it can never grow without
// limit. Entries are stored by value; Get hands out a copy.
type MemoryBlogCache struct {
	c cache.Cache[string, entity.BlogPost]
}

// NewMemoryBlogCache creates a bounded cache. Entries expire ttl after being
// set; once maxKeys entries exist the least recently used one is evicted.
func NewMemoryBlogCache(maxKeys int, ttl time.Duration) *MemoryBlogCache {
	return &MemoryBlogCache{
		c: cache.NewCache[string, entity.BlogPost]().
			WithMaxKeys(maxKeys).
			WithTTL(ttl).
			WithLRU(),
	}
}

var _ contract.IBlogCache = (*MemoryBlogCache)(nil)

// Get returns the cached post for the key, if present and fresh.
func (m *MemoryBlogCache) Get(_ context.Context, key string) (*entity.BlogPost, bool, error) {
	post, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	return &post, true, nil
}

// Set stores the post under the key with the cache's default TTL.
func (m *MemoryBlogCache) Set(_ context.Context, key string, post *entity.BlogPost) error {
	m.c.Set(key, *post, 0)
	return nil
}

// Invalidate drops the given keys.
func (m *MemoryBlogCache) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.c.Invalidate(key)
	}
	return nil
}

// Purge drops every entry.
func (m *MemoryBlogCache) Purge(_ context.Context) error {
	m.c.Purge()
	return nil
}
