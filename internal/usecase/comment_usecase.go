package usecase

import (
	"context"
	"fmt"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	usecasecontract "github.com/senaitabera/wellspring/internal/usecase/contract"
)

// AddCommentInput is a reader comment submission.
type AddCommentInput struct {
	PostID  string
	Content string
	Author  *entity.Author
}

// ICommentUseCase defines comment and moderation business logic.
type ICommentUseCase interface {
	Add(ctx context.Context, input AddCommentInput) (*entity.Comment, error)
	// ListPublic returns approved comments for a post.
	ListPublic(ctx context.Context, postID string) ([]*entity.Comment, error)
	// ListModeration returns comments for the moderation queue, optionally by status.
	ListModeration(ctx context.Context, status entity.CommentStatus) ([]*entity.Comment, error)
	Moderate(ctx context.Context, id string, status entity.CommentStatus) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
}

// CommentUseCaseImpl implements the ICommentUseCase interface.
type CommentUseCaseImpl struct {
	commentRepo contract.ICommentRepository
	blogRepo    contract.IBlogRepository
	uuidgen     usecasecontract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewCommentUseCase creates a new instance of CommentUseCase.
func NewCommentUseCase(commentRepo contract.ICommentRepository, blogRepo contract.IBlogRepository, uuidgen usecasecontract.IUUIDGenerator, logger usecasecontract.IAppLogger) *CommentUseCaseImpl {
	return &CommentUseCaseImpl{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		uuidgen:     uuidgen,
		logger:      logger,
	}
}

var _ ICommentUseCase = (*CommentUseCaseImpl)(nil)

// Add stores a new comment in the pending state. The target post must exist.
func (uc *CommentUseCaseImpl) Add(ctx context.Context, input AddCommentInput) (*entity.Comment, error) {
	if input.PostID == "" {
		return nil, fmt.Errorf("post id is required: %w", entity.ErrInvalidArgument)
	}
	if input.Content == "" {
		return nil, fmt.Errorf("content is required: %w", entity.ErrInvalidArgument)
	}

	if _, err := uc.blogRepo.GetByID(ctx, input.PostID); err != nil {
		uc.logger.Errorf("failed to resolve post %s for comment: %v", input.PostID, err)
		return nil, err
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

	comment := &entity.Comment{
		ID:      uc.uuidgen.NewUUID(),
		PostID:  input.PostID,
		Author:  author,
		Content: input.Content,
		Status:  entity.CommentStatusPending,
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorf("failed to create comment: %v", err)
		return nil, err
	}
	return comment, nil
}

// ListPublic returns approved comments for a post, oldest first.
func (uc *CommentUseCaseImpl) ListPublic(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if postID == "" {
		return nil, fmt.Errorf("post id is required: %w", entity.ErrInvalidArgument)
	}
	comments, err := uc.commentRepo.ListByPost(ctx, postID, entity.CommentStatusApproved)
	if err != nil {
		uc.logger.Errorf("failed to list comments for post %s: %v", postID, err)
		return nil, err
	}
	return comments, nil
}

// ListModeration returns comments for the moderation queue.
func (uc *CommentUseCaseImpl) ListModeration(ctx context.Context, status entity.CommentStatus) ([]*entity.Comment, error) {
	if status != "" && !entity.ValidCommentStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, entity.ErrInvalidArgument)
	}
	comments, err := uc.commentRepo.ListByStatus(ctx, status)
	if err != nil {
		uc.logger.Errorf("failed to list comments for moderation: %v", err)
		return nil, err
	}
	return comments, nil
}

// Moderate moves a comment to a new moderation state.
func (uc *CommentUseCaseImpl) Moderate(ctx context.Context, id string, status entity.CommentStatus) (*entity.Comment, error) {
	if id == "" {
		return nil, fmt.Errorf("comment id is required: %w", entity.ErrInvalidArgument)
	}
	if !entity.ValidCommentStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, entity.ErrInvalidArgument)
	}

	if err := uc.commentRepo.UpdateStatus(ctx, id, status); err != nil {
		uc.logger.Errorf("failed to moderate comment %s: %v", id, err)
		return nil, err
	}
	return uc.commentRepo.GetByID(ctx, id)
}

// Delete permanently removes a comment.
func (uc *CommentUseCaseImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("comment id is required: %w", entity.ErrInvalidArgument)
	}
	if err := uc.commentRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete comment %s: %v", id, err)
		return err
	}
	return nil
}
