package contract

import (
	"context"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// ICommunityRepository manages discussion board posts. Deletion is soft: a
// deleted post stays in the collection flagged is_deleted and is excluded
// from every read path.
type ICommunityRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	GetByID(ctx context.Context, id string) (*entity.CommunityPost, error)
	List(ctx context.Context, limit int64) ([]*entity.CommunityPost, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, id string) error
}
