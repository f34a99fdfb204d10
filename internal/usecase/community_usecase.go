package usecase

import (
	"context"
	"fmt"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	usecasecontract "github.com/senaitabera/wellspring/internal/usecase/contract"
)

// CreateCommunityPostInput is the validated form input for a new board post.
type CreateCommunityPostInput struct {
	Title   string
	Content string
	Tags    []string
	Author  *entity.Author
}

// UpdateCommunityPostInput is a partial patch; nil fields are left untouched.
type UpdateCommunityPostInput struct {
	Title   *string
	Content *string
	Tags    []string
}

// ICommunityUseCase defines discussion board business logic.
type ICommunityUseCase interface {
	CreatePost(ctx context.Context, input CreateCommunityPostInput) (*entity.CommunityPost, error)
	GetPost(ctx context.Context, id string) (*entity.CommunityPost, error)
	ListPosts(ctx context.Context, limit int64) ([]*entity.CommunityPost, error)
	UpdatePost(ctx context.Context, id string, input UpdateCommunityPostInput) (*entity.CommunityPost, error)
	DeletePost(ctx context.Context, id string) error
}

// CommunityUseCaseImpl implements the ICommunityUseCase interface.
type CommunityUseCaseImpl struct {
	repo    contract.ICommunityRepository
	uuidgen usecasecontract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
}

// NewCommunityUseCase creates a new instance of CommunityUseCase.
func NewCommunityUseCase(repo contract.ICommunityRepository, uuidgen usecasecontract.IUUIDGenerator, logger usecasecontract.IAppLogger) *CommunityUseCaseImpl {
	return &CommunityUseCaseImpl{
		repo:    repo,
		uuidgen: uuidgen,
		logger:  logger,
	}
}

var _ ICommunityUseCase = (*CommunityUseCaseImpl)(nil)

// CreatePost creates a new discussion board post.
func (uc *CommunityUseCaseImpl) CreatePost(ctx context.Context, input CreateCommunityPostInput) (*entity.CommunityPost, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", entity.ErrInvalidArgument)
	}
	if input.Content == "" {
		return nil, fmt.Errorf("content is required: %w", entity.ErrInvalidArgument)
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

	post := &entity.CommunityPost{
		ID:      uc.uuidgen.NewUUID(),
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
		Author:  author,
	}

	if err := uc.repo.Create(ctx, post); err != nil {
		uc.logger.Errorf("failed to create community post: %v", err)
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a single board post.
func (uc *CommunityUseCaseImpl) GetPost(ctx context.Context, id string) (*entity.CommunityPost, error) {
	if id == "" {
		return nil, fmt.Errorf("community post id is required: %w", entity.ErrInvalidArgument)
	}
	post, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorf("failed to get community post %s: %v", id, err)
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves board posts newest first.
func (uc *CommunityUseCaseImpl) ListPosts(ctx context.Context, limit int64) ([]*entity.CommunityPost, error) {
	posts, err := uc.repo.List(ctx, limit)
	if err != nil {
		uc.logger.Errorf("failed to list community posts: %v", err)
		return nil, err
	}
	return posts, nil
}

// UpdatePost applies a partial patch to a board post.
func (uc *CommunityUseCaseImpl) UpdatePost(ctx context.Context, id string, input UpdateCommunityPostInput) (*entity.CommunityPost, error) {
	if id == "" {
		return nil, fmt.Errorf("community post id is required: %w", entity.ErrInvalidArgument)
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Tags != nil {
		updates["tags"] = input.Tags
	}

	if err := uc.repo.Update(ctx, id, updates); err != nil {
		uc.logger.Errorf("failed to update community post %s: %v", id, err)
		return nil, err
	}
	return uc.repo.GetByID(ctx, id)
}

// DeletePost soft-deletes a board post so existing thread references keep
// resolving.
func (uc *CommunityUseCaseImpl) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("community post id is required: %w", entity.ErrInvalidArgument)
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete community post %s: %v", id, err)
		return err
	}
	return nil
}
