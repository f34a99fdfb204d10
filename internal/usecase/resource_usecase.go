package usecase

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/infrastructure/metrics"
	usecasecontract "github.com/senaitabera/wellspring/internal/usecase/contract"
)

// CreateResourceInput is the validated form input for a new resource.
type CreateResourceInput struct {
	Title       string
	Description string
	FileURL     string
	Category    string
}

// UpdateResourceInput is a partial patch; nil fields are left untouched.
type UpdateResourceInput struct {
	Title       *string
	Description *string
	FileURL     *string
	Category    *string
}

// IResourceUseCase defines resource library business logic.
type IResourceUseCase interface {
	Create(ctx context.Context, input CreateResourceInput) (*entity.Resource, error)
	Get(ctx context.Context, id string) (*entity.Resource, error)
	List(ctx context.Context, category string) ([]*entity.Resource, error)
	Update(ctx context.Context, id string, input UpdateResourceInput) (*entity.Resource, error)
	Delete(ctx context.Context, id string) error
}

// ResourceUseCaseImpl implements the IResourceUseCase interface. Listings are
// read far more often than resources change, so they are cached in-process
// and the whole cache is flushed on any mutation.
type ResourceUseCaseImpl struct {
	repo      contract.IResourceRepository
	listCache *gocache.Cache
	uuidgen   usecasecontract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
}

// NewResourceUseCase creates a new instance of ResourceUseCase. listTTL is
// the freshness window for cached listings.
func NewResourceUseCase(repo contract.IResourceRepository, uuidgen usecasecontract.IUUIDGenerator, logger usecasecontract.IAppLogger, listTTL time.Duration) *ResourceUseCaseImpl {
	return &ResourceUseCaseImpl{
		repo:      repo,
		listCache: gocache.New(listTTL, 2*listTTL),
		uuidgen:   uuidgen,
		logger:    logger,
	}
}

var _ IResourceUseCase = (*ResourceUseCaseImpl)(nil)

func resourceListKey(category string) string {
	if category == "" {
		category = contract.CategoryAll
	}
	return "resources:list:" + category
}

// Create stores a new resource record.
func (uc *ResourceUseCaseImpl) Create(ctx context.Context, input CreateResourceInput) (*entity.Resource, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", entity.ErrInvalidArgument)
	}
	if input.FileURL == "" {
		return nil, fmt.Errorf("file url is required: %w", entity.ErrInvalidArgument)
	}

	resource := &entity.Resource{
		ID:          uc.uuidgen.NewUUID(),
		Title:       input.Title,
		Description: input.Description,
		FileURL:     input.FileURL,
		Category:    input.Category,
	}

	if err := uc.repo.Create(ctx, resource); err != nil {
		uc.logger.Errorf("failed to create resource: %v", err)
		return nil, err
	}
	uc.listCache.Flush()
	return resource, nil
}

// Get retrieves a single resource record.
func (uc *ResourceUseCaseImpl) Get(ctx context.Context, id string) (*entity.Resource, error) {
	if id == "" {
		return nil, fmt.Errorf("resource id is required: %w", entity.ErrInvalidArgument)
	}
	resource, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorf("failed to get resource %s: %v", id, err)
		return nil, err
	}
	return resource, nil
}

// List retrieves resources, served from cache within the freshness window.
func (uc *ResourceUseCaseImpl) List(ctx context.Context, category string) ([]*entity.Resource, error) {
	key := resourceListKey(category)
	if cached, found := uc.listCache.Get(key); found {
		metrics.IncResourceListHit()
		return cached.([]*entity.Resource), nil
	}
	metrics.IncResourceListMiss()

	items, err := uc.repo.List(ctx, category)
	if err != nil {
		uc.logger.Errorf("failed to list resources: %v", err)
		return nil, err
	}

	uc.listCache.Set(key, items, gocache.DefaultExpiration)
	return items, nil
}

// Update applies a partial patch to a resource record.
func (uc *ResourceUseCaseImpl) Update(ctx context.Context, id string, input UpdateResourceInput) (*entity.Resource, error) {
	if id == "" {
		return nil, fmt.Errorf("resource id is required: %w", entity.ErrInvalidArgument)
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.FileURL != nil {
		updates["file_url"] = *input.FileURL
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}

	if err := uc.repo.Update(ctx, id, updates); err != nil {
		uc.logger.Errorf("failed to update resource %s: %v", id, err)
		return nil, err
	}
	uc.listCache.Flush()
	return uc.repo.GetByID(ctx, id)
}

// Delete permanently removes a resource record.
func (uc *ResourceUseCaseImpl) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("resource id is required: %w", entity.ErrInvalidArgument)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete resource %s: %v", id, err)
		return err
	}
	uc.listCache.Flush()
	return nil
}
