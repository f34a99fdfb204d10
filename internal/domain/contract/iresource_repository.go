package contract

import (
	"context"

	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// IResourceRepository manages downloadable resource records.
type IResourceRepository interface {
	Create(ctx context.Context, r *entity.Resource) error
	GetByID(ctx context.Context, id string) (*entity.Resource, error)
	// List returns resources newest first, optionally restricted to a category.
	List(ctx context.Context, category string) ([]*entity.Resource, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
