package contract

import (
	"context"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// ICommentRepository manages reader comments on blog posts.
type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	// ListByPost returns comments for a post, oldest first. A non-empty status
	// restricts the listing (public pages pass approved, moderation passes "").
	ListByPost(ctx context.Context, postID string, status entity.CommentStatus) ([]*entity.Comment, error)
	// ListByStatus returns comments across all posts for the moderation queue.
	ListByStatus(ctx context.Context, status entity.CommentStatus) ([]*entity.Comment, error)
	UpdateStatus(ctx context.Context, id string, status entity.CommentStatus) error
	Delete(ctx context.Context, id string) error
}
