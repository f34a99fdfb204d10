package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/usecase"
)

// fakeCommentRepo is an in-memory ICommentRepository.
type fakeCommentRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{items: make(map[string]*entity.Comment)}
}

var _ contract.ICommentRepository = (*fakeCommentRepo)(nil)

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *comment
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	r.items[comment.ID] = &clone
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.items[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, entity.ErrNotFound
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID string, status entity.CommentStatus) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Comment, 0)
	for _, c := range r.items {
		if c.PostID != postID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeCommentRepo) ListByStatus(ctx context.Context, status entity.CommentStatus) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Comment, 0)
	for _, c := range r.items {
		if status != "" && c.Status != status {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeCommentRepo) UpdateStatus(ctx context.Context, id string, status entity.CommentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return entity.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newCommentUsecase(t *testing.T) (*usecase.CommentUseCaseImpl, *entity.BlogPost) {
	t.Helper()
	blogRepo := newFakeBlogRepo()
	blogUC := usecase.NewBlogUseCase(blogRepo, newFakeBlogCache(), &seqUUIDGen{}, testLogger{})
	post := mustCreate(t, blogUC, usecase.CreateBlogPostInput{Title: "Commented Post", Content: "body"})

	uc := usecase.NewCommentUseCase(newFakeCommentRepo(), blogRepo, &seqUUIDGen{}, testLogger{})
	return uc, post
}

func TestAddComment(t *testing.T) {
	uc, post := newCommentUsecase(t)
	ctx := context.Background()

	comment, err := uc.Add(ctx, usecase.AddCommentInput{PostID: post.ID, Content: "Loved this."})
	assert.NoError(t, err)
	assert.Equal(t, entity.CommentStatusPending, comment.Status)
	assert.Equal(t, entity.DefaultAuthorName, comment.Author.Name)

	// A pending comment is invisible publicly but sits in the queue.
	public, err := uc.ListPublic(ctx, post.ID)
	assert.NoError(t, err)
	assert.Len(t, public, 0)

	queue, err := uc.ListModeration(ctx, entity.CommentStatusPending)
	assert.NoError(t, err)
	assert.Len(t, queue, 1)
}

func TestAddComment_UnknownPost(t *testing.T) {
	uc, _ := newCommentUsecase(t)

	_, err := uc.Add(context.Background(), usecase.AddCommentInput{PostID: "ghost", Content: "hi"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestModerateComment(t *testing.T) {
	uc, post := newCommentUsecase(t)
	ctx := context.Background()

	comment, err := uc.Add(ctx, usecase.AddCommentInput{PostID: post.ID, Content: "First!"})
	assert.NoError(t, err)

	approved, err := uc.Moderate(ctx, comment.ID, entity.CommentStatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, entity.CommentStatusApproved, approved.Status)

	public, err := uc.ListPublic(ctx, post.ID)
	assert.NoError(t, err)
	assert.Len(t, public, 1)

	_, err = uc.Moderate(ctx, comment.ID, "banned")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	assert.NoError(t, uc.Delete(ctx, comment.ID))
	assert.ErrorIs(t, uc.Delete(ctx, comment.ID), entity.ErrNotFound)
}
