package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/infrastructure/store"
)

func post(id, slug string) *entity.BlogPost {
	return &entity.BlogPost{
		ID:     id,
		Slug:   slug,
		Title:  "t",
		Status: entity.BlogStatusPublished,
		Layout: entity.BlogLayoutClassic,
	}
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := store.NewMemoryBlogCache(10, time.Minute)
	ctx := context.Background()

	_, found, err := c.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, c.Set(ctx, "a-slug", post("a", "a-slug")))
	got, found, err := c.Get(ctx, "a-slug")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a", got.ID)

	// Get hands out a copy; mutating it must not poison the cache.
	got.Title = "mutated"
	again, found, _ := c.Get(ctx, "a-slug")
	assert.True(t, found)
	assert.Equal(t, "t", again.Title)
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	c := store.NewMemoryBlogCache(10, 30*time.Millisecond)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", post("a", "k")))
	_, found, _ := c.Get(ctx, "k")
	assert.True(t, found)

	time.Sleep(60 * time.Millisecond)
	_, found, _ = c.Get(ctx, "k")
	assert.False(t, found, "entry must expire after the TTL")
}

func TestMemoryCacheCapacityBound(t *testing.T) {
	c := store.NewMemoryBlogCache(2, time.Minute)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "one", post("1", "one")))
	assert.NoError(t, c.Set(ctx, "two", post("2", "two")))
	// Touch "one" so "two" is the LRU victim.
	_, _, _ = c.Get(ctx, "one")
	assert.NoError(t, c.Set(ctx, "three", post("3", "three")))

	_, foundOne, _ := c.Get(ctx, "one")
	_, foundTwo, _ := c.Get(ctx, "two")
	_, foundThree, _ := c.Get(ctx, "three")
	assert.True(t, foundOne)
	assert.False(t, foundTwo, "capacity bound must evict the least recently used entry")
	assert.True(t, foundThree)
}

func TestMemoryCacheInvalidateAndPurge(t *testing.T) {
	c := store.NewMemoryBlogCache(10, time.Minute)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "id-1", post("1", "s")))
	assert.NoError(t, c.Set(ctx, "s", post("1", "s")))
	assert.NoError(t, c.Set(ctx, "other", post("2", "other")))

	assert.NoError(t, c.Invalidate(ctx, "id-1", "s"))
	_, found, _ := c.Get(ctx, "id-1")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "s")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "other")
	assert.True(t, found)

	assert.NoError(t, c.Purge(ctx))
	_, found, _ = c.Get(ctx, "other")
	assert.False(t, found)
}
