package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/usecase"
)

// testLogger discards everything; usecase tests assert behavior, not logs.
type testLogger struct{}

func (testLogger) Debugf(string, ...interface{})   {}
func (testLogger) Infof(string, ...interface{})    {}
func (testLogger) Warningf(string, ...interface{}) {}
func (testLogger) Errorf(string, ...interface{})   {}
func (testLogger) Fatalf(string, ...interface{})   {}

// seqUUIDGen hands out deterministic ids.
type seqUUIDGen struct{ n int }

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

// fakeBlogRepo is an in-memory IBlogRepository mirroring the store's
// semantics: unique slugs, version bumps, published-only listing order.
type fakeBlogRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.BlogPost

	GetBySlugCalls int
	GetByIDCalls   int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]*entity.BlogPost)}
}

var _ contract.IBlogRepository = (*fakeBlogRepo)(nil)

func (r *fakeBlogRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return fmt.Errorf("slug %q already exists: %w", post.Slug, entity.ErrConflict)
		}
	}
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *fakeBlogRepo) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.GetBySlugCalls++
	for _, p := range r.posts {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *fakeBlogRepo) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.GetByIDCalls++
	if p, ok := r.posts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, entity.ErrNotFound
}

func (r *fakeBlogRepo) ListPublished(ctx context.Context, opts *contract.BlogListOptions) ([]*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.BlogPost
	for _, p := range r.posts {
		if p.Status != entity.BlogStatusPublished {
			continue
		}
		if opts.Category != "" && opts.Category != contract.CategoryAll {
			match := false
			for _, c := range p.Category {
				if c == opts.Category {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		if opts.Trending && !p.IsTrending {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	if opts.Trending {
		sort.Slice(out, func(i, j int) bool {
			if out[i].TrendingOrder != out[j].TrendingOrder {
				return out[i].TrendingOrder < out[j].TrendingOrder
			}
			return out[i].PublishedAt.After(out[j].PublishedAt)
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	}
	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *fakeBlogRepo) ListAll(ctx context.Context) ([]*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.BlogPost
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out, nil
}

func (r *fakeBlogRepo) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return entity.ErrNotFound
	}
	if expectedVersion != nil && p.Version != *expectedVersion {
		return fmt.Errorf("version mismatch: %w", entity.ErrConflict)
	}
	for field, value := range updates {
		switch field {
		case "title":
			p.Title = value.(string)
		case "slug":
			p.Slug = value.(string)
		case "content":
			p.Content = value.(string)
		case "excerpt":
			p.Excerpt = value.(string)
		case "status":
			p.Status = entity.BlogStatus(value.(string))
		case "layout":
			p.Layout = entity.BlogLayout(value.(string))
		case "category":
			p.Category = value.([]string)
		case "tags":
			p.Tags = value.([]string)
		case "is_trending":
			p.IsTrending = value.(bool)
		case "trending_order":
			p.TrendingOrder = value.(int)
		}
	}
	p.Version++
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

// fakeBlogCache is a plain map cache with hit/set/invalidate bookkeeping.
type fakeBlogCache struct {
	mu      sync.Mutex
	entries map[string]entity.BlogPost
}

func newFakeBlogCache() *fakeBlogCache {
	return &fakeBlogCache{entries: make(map[string]entity.BlogPost)}
}

var _ contract.IBlogCache = (*fakeBlogCache)(nil)

func (c *fakeBlogCache) Get(ctx context.Context, key string) (*entity.BlogPost, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[key]; ok {
		clone := p
		return &clone, true, nil
	}
	return nil, false, nil
}

func (c *fakeBlogCache) Set(ctx context.Context, key string, post *entity.BlogPost) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = *post
	return nil
}

func (c *fakeBlogCache) Invalidate(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *fakeBlogCache) Purge(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entity.BlogPost)
	return nil
}

func newBlogUsecase() (*usecase.BlogUseCaseImpl, *fakeBlogRepo, *fakeBlogCache) {
	repo := newFakeBlogRepo()
	cache := newFakeBlogCache()
	uc := usecase.NewBlogUseCase(repo, cache, &seqUUIDGen{}, testLogger{})
	return uc, repo, cache
}

func mustCreate(t *testing.T, uc usecase.IBlogUseCase, input usecase.CreateBlogPostInput) *entity.BlogPost {
	t.Helper()
	post, err := uc.CreateBlogPost(context.Background(), input)
	assert.NoError(t, err)
	return post
}

func TestGetBlogPost_EmptyKey(t *testing.T) {
	uc, repo, _ := newBlogUsecase()

	_, err := uc.GetBlogPost(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	assert.Zero(t, repo.GetBySlugCalls)
	assert.Zero(t, repo.GetByIDCalls)
}

func TestGetBlogPost_SlugTakesPrecedenceOverID(t *testing.T) {
	uc, repo, _ := newBlogUsecase()

	// One post whose slug happens to equal another post's document id.
	other := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Other Post", Content: "body"})
	collider := &entity.BlogPost{
		ID: "collider", Slug: other.ID, Title: "Collider", Content: "body",
		Status: entity.BlogStatusDraft, Layout: entity.BlogLayoutClassic,
		Version: 1, PublishedAt: time.Now(), UpdatedAt: time.Now(),
	}
	assert.NoError(t, repo.Create(context.Background(), collider))

	got, err := uc.GetBlogPost(context.Background(), other.ID)
	assert.NoError(t, err)
	assert.Equal(t, "collider", got.ID)
}

func TestGetBlogPost_FallsBackToID(t *testing.T) {
	uc, _, _ := newBlogUsecase()
	post := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Hello, World!", Content: "body"})

	bySlug, err := uc.GetBlogPost(context.Background(), "hello-world")
	assert.NoError(t, err)
	assert.Equal(t, post.ID, bySlug.ID)

	byID, err := uc.GetBlogPost(context.Background(), post.ID)
	assert.NoError(t, err)
	assert.Equal(t, post.ID, byID.ID)
}

func TestGetBlogPost_NotFound(t *testing.T) {
	uc, _, _ := newBlogUsecase()

	_, err := uc.GetBlogPost(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetBlogPost_CacheShortCircuitsStore(t *testing.T) {
	uc, repo, _ := newBlogUsecase()
	post := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Cached Post", Content: "body"})

	_, err := uc.GetBlogPost(context.Background(), post.Slug)
	assert.NoError(t, err)
	callsAfterMiss := repo.GetBySlugCalls + repo.GetByIDCalls

	_, err = uc.GetBlogPost(context.Background(), post.Slug)
	assert.NoError(t, err)
	assert.Equal(t, callsAfterMiss, repo.GetBySlugCalls+repo.GetByIDCalls, "second lookup must not touch the store")
}

func TestCreateBlogPost_Defaults(t *testing.T) {
	uc, _, _ := newBlogUsecase()

	post := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "  Mindful --- Mornings!  ", Content: "body"})
	assert.Equal(t, "mindful-mornings", post.Slug)
	assert.Equal(t, entity.BlogStatusDraft, post.Status)
	assert.Equal(t, entity.BlogLayoutClassic, post.Layout)
	assert.Equal(t, entity.DefaultAuthorName, post.Author.Name)
	assert.Equal(t, entity.DefaultAuthorAvatar, post.Author.Avatar)
	assert.False(t, post.IsTrending)
	assert.Equal(t, entity.DefaultTrendingOrder, post.TrendingOrder)
	assert.Equal(t, int64(1), post.Version)
	assert.True(t, post.PublishedAt.Equal(post.UpdatedAt))
}

func TestCreateBlogPost_Validation(t *testing.T) {
	uc, _, _ := newBlogUsecase()
	ctx := context.Background()

	_, err := uc.CreateBlogPost(ctx, usecase.CreateBlogPostInput{Content: "body"})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.CreateBlogPost(ctx, usecase.CreateBlogPostInput{Title: "t", Content: ""})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.CreateBlogPost(ctx, usecase.CreateBlogPostInput{Title: "!!!", Content: "body"})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.CreateBlogPost(ctx, usecase.CreateBlogPostInput{Title: "t", Content: "body", Status: "archived"})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestCreateBlogPost_DuplicateSlug(t *testing.T) {
	uc, _, _ := newBlogUsecase()
	mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Same Title", Content: "body"})

	_, err := uc.CreateBlogPost(context.Background(), usecase.CreateBlogPostInput{Title: "Same! Title?", Content: "body"})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestGetPublicBlogPosts_Filters(t *testing.T) {
	uc, repo, _ := newBlogUsecase()
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	seed := []*entity.BlogPost{
		{ID: "a", Slug: "a", Title: "a", Content: "x", Status: entity.BlogStatusPublished, Category: []string{"Habits"}, Tags: []string{"sleep"}, IsTrending: true, TrendingOrder: 2, PublishedAt: base.Add(1 * time.Hour)},
		{ID: "b", Slug: "b", Title: "b", Content: "x", Status: entity.BlogStatusPublished, Category: []string{"Nutrition"}, Tags: []string{"sleep", "food"}, IsTrending: true, TrendingOrder: 1, PublishedAt: base.Add(2 * time.Hour)},
		{ID: "c", Slug: "c", Title: "c", Content: "x", Status: entity.BlogStatusPublished, Category: []string{"Habits"}, PublishedAt: base.Add(3 * time.Hour)},
		{ID: "d", Slug: "d", Title: "d", Content: "x", Status: entity.BlogStatusDraft, Category: []string{"Habits"}, PublishedAt: base.Add(4 * time.Hour)},
	}
	for _, p := range seed {
		p.Layout = entity.BlogLayoutClassic
		p.Version = 1
		p.UpdatedAt = p.PublishedAt
		assert.NoError(t, repo.Create(ctx, p))
	}

	// Drafts never appear; newest first.
	posts, err := uc.GetPublicBlogPosts(ctx, usecase.PublicListOptions{})
	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, "c", posts[0].ID)

	// Category filter matches array membership; "All" means no filter.
	posts, err = uc.GetPublicBlogPosts(ctx, usecase.PublicListOptions{Category: "Habits"})
	assert.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = uc.GetPublicBlogPosts(ctx, usecase.PublicListOptions{Category: contract.CategoryAll})
	assert.NoError(t, err)
	assert.Len(t, posts, 3)

	// Trending rail is ordered by curation rank, not recency.
	posts, err = uc.GetPublicBlogPosts(ctx, usecase.PublicListOptions{Trending: true})
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "b", posts[0].ID)
	assert.Equal(t, "a", posts[1].ID)

	// Tag filter runs after retrieval, exact match.
	posts, err = uc.GetPublicBlogPosts(ctx, usecase.PublicListOptions{Tag: "sleep"})
	assert.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = uc.GetPublicBlogPosts(ctx, usecase.PublicListOptions{Tag: "Sleep"})
	assert.NoError(t, err)
	assert.Len(t, posts, 0)

	// Limit caps the result.
	posts, err = uc.GetPublicBlogPosts(ctx, usecase.PublicListOptions{Limit: 1})
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestUpdateBlogPost_TitleChangesSlugAndInvalidatesOldKey(t *testing.T) {
	uc, _, _ := newBlogUsecase()
	ctx := context.Background()
	post := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Old Title", Content: "body"})

	// Warm the cache under the old slug.
	_, err := uc.GetBlogPost(ctx, "old-title")
	assert.NoError(t, err)

	newTitle := "New Title"
	updated, err := uc.UpdateBlogPost(ctx, post.ID, usecase.UpdateBlogPostInput{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
	assert.Equal(t, int64(2), updated.Version)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
	assert.True(t, updated.PublishedAt.Equal(post.PublishedAt))

	// The old slug no longer resolves, cached or not.
	_, err = uc.GetBlogPost(ctx, "old-title")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	got, err := uc.GetBlogPost(ctx, "new-title")
	assert.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestUpdateBlogPost_VersionConflict(t *testing.T) {
	uc, _, _ := newBlogUsecase()
	ctx := context.Background()
	post := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Versioned", Content: "body"})

	content := "second writer"
	stale := int64(99)
	_, err := uc.UpdateBlogPost(ctx, post.ID, usecase.UpdateBlogPostInput{Content: &content, ExpectedVersion: &stale})
	assert.ErrorIs(t, err, entity.ErrConflict)

	current := post.Version
	_, err = uc.UpdateBlogPost(ctx, post.ID, usecase.UpdateBlogPostInput{Content: &content, ExpectedVersion: &current})
	assert.NoError(t, err)
}

func TestDeleteBlogPost_RemovesCachedEntries(t *testing.T) {
	uc, _, _ := newBlogUsecase()
	ctx := context.Background()
	post := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Short Lived", Content: "body"})

	// Warm the cache under both keys.
	_, err := uc.GetBlogPost(ctx, post.Slug)
	assert.NoError(t, err)
	_, err = uc.GetBlogPost(ctx, post.ID)
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteBlogPost(ctx, post.ID))

	_, err = uc.GetBlogPost(ctx, post.Slug)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = uc.GetBlogPost(ctx, post.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteBlogPost(ctx, post.ID), entity.ErrNotFound)
}

func TestSetTrending(t *testing.T) {
	uc, _, _ := newBlogUsecase()
	ctx := context.Background()
	post := mustCreate(t, uc, usecase.CreateBlogPostInput{Title: "Curated", Content: "body"})

	updated, err := uc.SetTrending(ctx, post.ID, true, 3)
	assert.NoError(t, err)
	assert.True(t, updated.IsTrending)
	assert.Equal(t, 3, updated.TrendingOrder)

	// Non-positive rank falls back to the default slot.
	updated, err = uc.SetTrending(ctx, post.ID, false, 0)
	assert.NoError(t, err)
	assert.False(t, updated.IsTrending)
	assert.Equal(t, entity.DefaultTrendingOrder, updated.TrendingOrder)
}
