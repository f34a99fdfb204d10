package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/usecase"
)

// MockBlogUsecase is a mock implementation of the IBlogUseCase interface
type MockBlogUsecase struct {
	// Control mock behavior
	ShouldFailGetBlogPost    bool
	ShouldReturnNotFound     bool
	ShouldFailList           bool
	ShouldFailCreateBlogPost bool
	ShouldFailUpdateBlogPost bool
	ShouldReturnConflict     bool
	ShouldFailDeleteBlogPost bool
	ShouldFailSetTrending    bool

	// Return values
	MockPost entity.BlogPost

	// Captured arguments
	LastLookupKey string
	LastListOpts  usecase.PublicListOptions
}

// Ensure MockBlogUsecase implements the correct interface for handler.NewBlogHandler
var _ usecase.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &MockBlogUsecase{
		MockPost: entity.BlogPost{
			ID:            "mock-post-id",
			Slug:          "morning-routines-that-stick",
			Title:         "Morning Routines That Stick",
			Content:       "Start small.",
			Status:        entity.BlogStatusPublished,
			Layout:        entity.BlogLayoutClassic,
			Category:      []string{"Habits"},
			Tags:          []string{"routine"},
			Author:        entity.DefaultAuthor(),
			TrendingOrder: entity.DefaultTrendingOrder,
			Version:       1,
			PublishedAt:   now,
			UpdatedAt:     now,
		},
	}
}

func (m *MockBlogUsecase) GetBlogPost(ctx context.Context, key string) (*entity.BlogPost, error) {
	m.LastLookupKey = key
	if m.ShouldReturnNotFound {
		return nil, entity.ErrNotFound
	}
	if m.ShouldFailGetBlogPost {
		return nil, errors.New("get blog post failed")
	}
	return &m.MockPost, nil
}

func (m *MockBlogUsecase) GetPublicBlogPosts(ctx context.Context, opts usecase.PublicListOptions) ([]*entity.BlogPost, error) {
	m.LastListOpts = opts
	if m.ShouldFailList {
		return nil, errors.New("list blog posts failed")
	}
	return []*entity.BlogPost{&m.MockPost}, nil
}

func (m *MockBlogUsecase) GetAllBlogPosts(ctx context.Context) ([]*entity.BlogPost, error) {
	if m.ShouldFailList {
		return nil, errors.New("list blog posts failed")
	}
	return []*entity.BlogPost{&m.MockPost}, nil
}

func (m *MockBlogUsecase) CreateBlogPost(ctx context.Context, input usecase.CreateBlogPostInput) (*entity.BlogPost, error) {
	if m.ShouldFailCreateBlogPost {
		return nil, errors.New("create blog post failed")
	}
	return &m.MockPost, nil
}

func (m *MockBlogUsecase) UpdateBlogPost(ctx context.Context, id string, input usecase.UpdateBlogPostInput) (*entity.BlogPost, error) {
	if m.ShouldReturnConflict {
		return nil, entity.ErrConflict
	}
	if m.ShouldFailUpdateBlogPost {
		return nil, errors.New("update blog post failed")
	}
	return &m.MockPost, nil
}

func (m *MockBlogUsecase) DeleteBlogPost(ctx context.Context, id string) error {
	if m.ShouldReturnNotFound {
		return entity.ErrNotFound
	}
	if m.ShouldFailDeleteBlogPost {
		return errors.New("delete blog post failed")
	}
	return nil
}

func (m *MockBlogUsecase) SetTrending(ctx context.Context, id string, trending bool, order int) (*entity.BlogPost, error) {
	if m.ShouldFailSetTrending {
		return nil, errors.New("set trending failed")
	}
	post := m.MockPost
	post.IsTrending = trending
	post.TrendingOrder = order
	return &post, nil
}
