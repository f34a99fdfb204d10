package contract

import (
	"context"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// IBlogCache is a short-lived read-through cache for single-post lookups.
// Entries are keyed by the caller's original lookup key (slug or id), so the
// same post fetched once by slug and once by id occupies two entries.
type IBlogCache interface {
	Get(ctx context.Context, key string) (*entity.BlogPost, bool, error)
	Set(ctx context.Context, key string, post *entity.BlogPost) error
	Invalidate(ctx context.Context, keys ...string) error
	Purge(ctx context.Context) error
}
