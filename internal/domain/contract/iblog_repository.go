package contract

import (
	"context"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// CategoryAll is the sentinel the site sends when no category filter applies.
const CategoryAll = "All"

// BlogListOptions narrows the public listing. The tag filter is intentionally
// absent: the store cannot combine an extra array-membership test with the
// other constraints in one query, so tags are filtered in memory by the
// usecase after retrieval.
type BlogListOptions struct {
	// Limit caps the result count at the store level. Zero means no cap.
	Limit int64
	// Category restricts to posts whose category list contains the value.
	// Empty or CategoryAll means no restriction.
	Category string
	// Trending restricts to curated posts and orders them by trending_order
	// ascending instead of published_at descending.
	Trending bool
}

// IBlogRepository provides methods for managing blog post documents.
type IBlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	// ListPublished returns published posts only, newest first, subject to opts.
	ListPublished(ctx context.Context, opts *BlogListOptions) ([]*entity.BlogPost, error)
	// ListAll returns every post regardless of status, newest first.
	ListAll(ctx context.Context) ([]*entity.BlogPost, error)
	// Update applies the given field patch and bumps the version counter.
	// A non-nil expectedVersion turns the write into a compare-and-swap.
	Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int64) error
	Delete(ctx context.Context, id string) error
}
