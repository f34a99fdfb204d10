package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/infrastructure/metrics"
	usecasecontract "github.com/senaitabera/wellspring/internal/usecase/contract"
	"github.com/senaitabera/wellspring/internal/utils"
)

// PublicListOptions narrows GetPublicBlogPosts. Zero values mean "no filter".
type PublicListOptions struct {
	Limit    int64
	Category string
	Trending bool
	// Tag is matched in memory after retrieval, exact and case-sensitive.
	Tag string
}

// CreateBlogPostInput is the validated form input for a new post.
type CreateBlogPostInput struct {
	Title         string
	Content       string
	Excerpt       string
	FeaturedImage string
	CoverImage    string
	Category      []string
	Tags          []string
	Status        entity.BlogStatus
	Layout        entity.BlogLayout
	Author        *entity.Author
	IsTrending    *bool
	TrendingOrder *int
}

// UpdateBlogPostInput is a partial patch; nil fields are left untouched.
// ExpectedVersion, when set, makes the update fail with ErrConflict if the
// post changed since it was read.
type UpdateBlogPostInput struct {
	Title           *string
	Content         *string
	Excerpt         *string
	FeaturedImage   *string
	CoverImage      *string
	Category        []string
	Tags            []string
	Status          *entity.BlogStatus
	Layout          *entity.BlogLayout
	ExpectedVersion *int64
}

// IBlogUseCase is the blog content access layer: the only sanctioned path
// between the site and the blog post collection.
type IBlogUseCase interface {
	GetBlogPost(ctx context.Context, key string) (*entity.BlogPost, error)
	GetPublicBlogPosts(ctx context.Context, opts PublicListOptions) ([]*entity.BlogPost, error)
	GetAllBlogPosts(ctx context.Context) ([]*entity.BlogPost, error)
	CreateBlogPost(ctx context.Context, input CreateBlogPostInput) (*entity.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, input UpdateBlogPostInput) (*entity.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error
	SetTrending(ctx context.Context, id string, trending bool, order int) (*entity.BlogPost, error)
}

// BlogUseCaseImpl implements the IBlogUseCase interface.
type BlogUseCaseImpl struct {
	blogRepo  contract.IBlogRepository
	blogCache contract.IBlogCache
	uuidgen   usecasecontract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	// simple metrics
	lookupHits uint64
	lookupMiss uint64
}

// NewBlogUseCase creates a new instance of BlogUseCase. The cache is injected
// here rather than living as package state so its lifetime and bounds belong
// to whoever composes the layer.
func NewBlogUseCase(blogRepo contract.IBlogRepository, blogCache contract.IBlogCache, uuidgen usecasecontract.IUUIDGenerator, logger usecasecontract.IAppLogger) *BlogUseCaseImpl {
	return &BlogUseCaseImpl{
		blogRepo:  blogRepo,
		blogCache: blogCache,
		uuidgen:   uuidgen,
		logger:    logger,
	}
}

// check if BlogUseCaseImpl implements the IBlogUseCase
var _ IBlogUseCase = (*BlogUseCaseImpl)(nil)

// GetBlogPost resolves a lookup key to a single post. The key may be a slug
// or a document id; slugs take precedence, so a key that happens to equal an
// unrelated document's id still resolves to the post carrying it as a slug.
func (uc *BlogUseCaseImpl) GetBlogPost(ctx context.Context, key string) (*entity.BlogPost, error) {
	if key == "" {
		return nil, fmt.Errorf("lookup key is required: %w", entity.ErrInvalidArgument)
	}

	// Cache first; a hit short-circuits all store I/O. Entries live under the
	// caller's original key, so slug and id lookups of the same post are
	// cached independently.
	if uc.blogCache != nil {
		cached, found, err := uc.blogCache.Get(ctx, key)
		if err != nil {
			uc.logger.Warningf("cache error: blog lookup key=%s err=%v", key, err)
		} else if found {
			atomic.AddUint64(&uc.lookupHits, 1)
			metrics.IncLookupHit()
			return cached, nil
		}
		atomic.AddUint64(&uc.lookupMiss, 1)
		metrics.IncLookupMiss()
	}

	post, err := uc.blogRepo.GetBySlug(ctx, key)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to get blog post by slug %s: %v", key, err)
		return nil, err
	}

	if post == nil {
		post, err = uc.blogRepo.GetByID(ctx, key)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, fmt.Errorf("blog post %q: %w", key, entity.ErrNotFound)
			}
			uc.logger.Errorf("failed to get blog post by id %s: %v", key, err)
			return nil, err
		}
	}

	if uc.blogCache != nil {
		if err := uc.blogCache.Set(ctx, key, post); err != nil {
			uc.logger.Warningf("cache set failed: blog lookup key=%s err=%v", key, err)
		}
	}
	return post, nil
}

// GetPublicBlogPosts returns published posts, newest first. Limit, category,
// and trending are pushed down to the store; the tag filter runs in memory
// afterwards because the store cannot combine a second array-membership test
// with the other constraints in one query.
func (uc *BlogUseCaseImpl) GetPublicBlogPosts(ctx context.Context, opts PublicListOptions) ([]*entity.BlogPost, error) {
	posts, err := uc.blogRepo.ListPublished(ctx, &contract.BlogListOptions{
		Limit:    opts.Limit,
		Category: opts.Category,
		Trending: opts.Trending,
	})
	if err != nil {
		uc.logger.Errorf("failed to list published blog posts: %v", err)
		return nil, err
	}

	if opts.Tag == "" {
		return posts, nil
	}

	filtered := make([]*entity.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.HasTag(opts.Tag) {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

// GetAllBlogPosts returns every post regardless of status, newest first.
// Intended for the admin dashboard; authorization happens at the route.
func (uc *BlogUseCaseImpl) GetAllBlogPosts(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := uc.blogRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list all blog posts: %v", err)
		return nil, err
	}
	return posts, nil
}

// CreateBlogPost derives the slug from the title, stamps both timestamps to
// the same instant, fills the remaining defaults, and inserts the document.
func (uc *BlogUseCaseImpl) CreateBlogPost(ctx context.Context, input CreateBlogPostInput) (*entity.BlogPost, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", entity.ErrInvalidArgument)
	}
	if input.Content == "" {
		return nil, fmt.Errorf("content is required: %w", entity.ErrInvalidArgument)
	}

	slug := utils.GenerateSlug(input.Title)
	if slug == "" {
		return nil, fmt.Errorf("title must contain at least one alphanumeric character: %w", entity.ErrInvalidArgument)
	}

	status := input.Status
	if status == "" {
		status = entity.BlogStatusDraft
	}
	if !entity.ValidBlogStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, entity.ErrInvalidArgument)
	}

	layout := input.Layout
	if layout == "" {
		layout = entity.BlogLayoutClassic
	}
	if !entity.ValidBlogLayout(layout) {
		return nil, fmt.Errorf("invalid layout %q: %w", layout, entity.ErrInvalidArgument)
	}

	author := entity.DefaultAuthor()
	if input.Author != nil {
		author = *input.Author
		if author.Name == "" {
			author.Name = entity.DefaultAuthorName
		}
		if author.Avatar == "" {
			author.Avatar = entity.DefaultAuthorAvatar
		}
	}

	isTrending := false
	if input.IsTrending != nil {
		isTrending = *input.IsTrending
	}
	trendingOrder := entity.DefaultTrendingOrder
	if input.TrendingOrder != nil {
		trendingOrder = *input.TrendingOrder
	}

	now := time.Now()
	post := &entity.BlogPost{
		ID:            uc.uuidgen.NewUUID(),
		Slug:          slug,
		Title:         input.Title,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		FeaturedImage: input.FeaturedImage,
		CoverImage:    input.CoverImage,
		Category:      input.Category,
		Tags:          input.Tags,
		Status:        status,
		Layout:        layout,
		Author:        author,
		IsTrending:    isTrending,
		TrendingOrder: trendingOrder,
		Version:       1,
		PublishedAt:   now,
		UpdatedAt:     now,
	}

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		uc.logger.Errorf("failed to create blog post %q: %v", slug, err)
		return nil, err
	}
	return post, nil
}

// UpdateBlogPost applies a partial patch. updated_at is always refreshed; the
// slug is re-derived only when the title changes, which silently changes the
// post's canonical URL.
func (uc *BlogUseCaseImpl) UpdateBlogPost(ctx context.Context, id string, input UpdateBlogPostInput) (*entity.BlogPost, error) {
	if id == "" {
		return nil, fmt.Errorf("blog post id is required: %w", entity.ErrInvalidArgument)
	}

	updates := make(map[string]interface{})
	oldSlug := ""

	if input.Title != nil {
		slug := utils.GenerateSlug(*input.Title)
		if slug == "" {
			return nil, fmt.Errorf("title must contain at least one alphanumeric character: %w", entity.ErrInvalidArgument)
		}
		updates["title"] = *input.Title
		updates["slug"] = slug

		// The old slug may still be cached under its own key; fetch it so the
		// stale entry can be dropped after the write.
		if current, err := uc.blogRepo.GetByID(ctx, id); err == nil {
			oldSlug = current.Slug
		}
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.FeaturedImage != nil {
		updates["featured_image"] = *input.FeaturedImage
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.Category != nil {
		updates["category"] = input.Category
	}
	if input.Tags != nil {
		updates["tags"] = input.Tags
	}
	if input.Status != nil {
		if !entity.ValidBlogStatus(*input.Status) {
			return nil, fmt.Errorf("invalid status %q: %w", *input.Status, entity.ErrInvalidArgument)
		}
		updates["status"] = string(*input.Status)
	}
	if input.Layout != nil {
		if !entity.ValidBlogLayout(*input.Layout) {
			return nil, fmt.Errorf("invalid layout %q: %w", *input.Layout, entity.ErrInvalidArgument)
		}
		updates["layout"] = string(*input.Layout)
	}

	if err := uc.blogRepo.Update(ctx, id, updates, input.ExpectedVersion); err != nil {
		uc.logger.Errorf("failed to update blog post %s: %v", id, err)
		return nil, err
	}

	updated, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorf("failed to get updated blog post %s: %v", id, err)
		return nil, err
	}

	uc.invalidate(ctx, id, updated.Slug, oldSlug)
	return updated, nil
}

// DeleteBlogPost permanently removes the post. No soft delete, no cascading
// cleanup of referenced media or comments.
func (uc *BlogUseCaseImpl) DeleteBlogPost(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("blog post id is required: %w", entity.ErrInvalidArgument)
	}

	post, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return err
		}
		uc.logger.Errorf("failed to get blog post %s before delete: %v", id, err)
		return err
	}

	if err := uc.blogRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete blog post %s: %v", id, err)
		return err
	}

	uc.invalidate(ctx, id, post.Slug, "")
	return nil
}

// SetTrending is the sanctioned path for trending curation, replacing the
// old direct store writes from the admin screen.
func (uc *BlogUseCaseImpl) SetTrending(ctx context.Context, id string, trending bool, order int) (*entity.BlogPost, error) {
	if id == "" {
		return nil, fmt.Errorf("blog post id is required: %w", entity.ErrInvalidArgument)
	}
	if order <= 0 {
		order = entity.DefaultTrendingOrder
	}

	updates := map[string]interface{}{
		"is_trending":    trending,
		"trending_order": order,
	}
	if err := uc.blogRepo.Update(ctx, id, updates, nil); err != nil {
		uc.logger.Errorf("failed to update trending state for blog post %s: %v", id, err)
		return nil, err
	}

	updated, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorf("failed to get blog post %s after trending update: %v", id, err)
		return nil, err
	}

	uc.invalidate(ctx, id, updated.Slug, "")
	return updated, nil
}

// invalidate drops the cache entries a mutation can have left stale: the id
// key, the current slug key, and the pre-update slug key when it changed.
func (uc *BlogUseCaseImpl) invalidate(ctx context.Context, id, slug, oldSlug string) {
	if uc.blogCache == nil {
		return
	}
	keys := []string{id}
	if slug != "" {
		keys = append(keys, slug)
	}
	if oldSlug != "" && oldSlug != slug {
		keys = append(keys, oldSlug)
	}
	if err := uc.blogCache.Invalidate(ctx, keys...); err != nil {
		uc.logger.Warningf("cache invalidation failed for blog post %s: %v", id, err)
	}
}
