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

// fakeResourceRepo is an in-memory IResourceRepository that counts list
// calls so tests can observe the cache.
type fakeResourceRepo struct {
	mu        sync.Mutex
	items     map[string]*entity.Resource
	ListCalls int
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{items: make(map[string]*entity.Resource)}
}

var _ contract.IResourceRepository = (*fakeResourceRepo)(nil)

func (r *fakeResourceRepo) Create(ctx context.Context, res *entity.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *res
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	r.items[res.ID] = &clone
	return nil
}

func (r *fakeResourceRepo) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.items[id]; ok {
		clone := *res
		return &clone, nil
	}
	return nil, entity.ErrNotFound
}

func (r *fakeResourceRepo) List(ctx context.Context, category string) ([]*entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	out := make([]*entity.Resource, 0, len(r.items))
	for _, res := range r.items {
		if category != "" && category != contract.CategoryAll && res.Category != category {
			continue
		}
		clone := *res
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeResourceRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.items[id]
	if !ok {
		return entity.ErrNotFound
	}
	for field, value := range updates {
		switch field {
		case "title":
			res.Title = value.(string)
		case "description":
			res.Description = value.(string)
		case "file_url":
			res.FileURL = value.(string)
		case "category":
			res.Category = value.(string)
		}
	}
	res.UpdatedAt = time.Now()
	return nil
}

func (r *fakeResourceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newResourceUsecase() (*usecase.ResourceUseCaseImpl, *fakeResourceRepo) {
	repo := newFakeResourceRepo()
	uc := usecase.NewResourceUseCase(repo, &seqUUIDGen{}, testLogger{}, time.Minute)
	return uc, repo
}

func TestResourceListCaching(t *testing.T) {
	uc, repo := newResourceUsecase()
	ctx := context.Background()

	_, err := uc.Create(ctx, usecase.CreateResourceInput{Title: "Meal Plan", FileURL: "https://cdn.example.com/meal-plan.pdf", Category: "Nutrition"})
	assert.NoError(t, err)

	items, err := uc.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, repo.ListCalls)

	// Second listing is served from cache.
	_, err = uc.List(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.ListCalls)

	// Each category filter is its own cache entry.
	_, err = uc.List(ctx, "Nutrition")
	assert.NoError(t, err)
	assert.Equal(t, 2, repo.ListCalls)
}

func TestResourceMutationsFlushListCache(t *testing.T) {
	uc, repo := newResourceUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, usecase.CreateResourceInput{Title: "Sleep Guide", FileURL: "https://cdn.example.com/sleep.pdf"})
	assert.NoError(t, err)

	_, err = uc.List(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.ListCalls)

	newTitle := "Sleep Guide v2"
	_, err = uc.Update(ctx, created.ID, usecase.UpdateResourceInput{Title: &newTitle})
	assert.NoError(t, err)

	items, err := uc.List(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, 2, repo.ListCalls, "update must flush the listing cache")
	assert.Equal(t, "Sleep Guide v2", items[0].Title)

	assert.NoError(t, uc.Delete(ctx, created.ID))
	items, err = uc.List(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, 3, repo.ListCalls, "delete must flush the listing cache")
	assert.Len(t, items, 0)
}

func TestResourceValidation(t *testing.T) {
	uc, _ := newResourceUsecase()
	ctx := context.Background()

	_, err := uc.Create(ctx, usecase.CreateResourceInput{FileURL: "https://cdn.example.com/x.pdf"})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.Create(ctx, usecase.CreateResourceInput{Title: "No File"})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.Get(ctx, "")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = uc.Get(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
