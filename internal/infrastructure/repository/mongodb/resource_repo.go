package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
)

// ResourceRepository represents the MongoDB implementation of the IResourceRepository interface.
type ResourceRepository struct {
	collection *mongo.Collection
}

// NewResourceRepository creates and returns a new ResourceRepository instance.
func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{
		collection: db.Collection("resources"),
	}
}

var _ contract.IResourceRepository = (*ResourceRepository)(nil)

// Create inserts a new resource record.
func (r *ResourceRepository) Create(ctx context.Context, res *entity.Resource) error {
	res.CreatedAt = time.Now()
	res.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, res)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// GetByID retrieves a single resource record.
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	var res entity.Resource
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("resource %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve resource: %w", err)
	}
	return &res, nil
}

// List retrieves resources newest first, optionally restricted to a category.
func (r *ResourceRepository) List(ctx context.Context, category string) ([]*entity.Resource, error) {
	filter := bson.M{}
	if category != "" && category != contract.CategoryAll {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resources: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*entity.Resource
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode resources: %w", err)
	}
	if items == nil {
		items = []*entity.Resource{}
	}
	return items, nil
}

// Update applies the given field patch to an existing resource.
func (r *ResourceRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("resource %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// Delete permanently removes a resource record.
func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("resource %s: %w", id, entity.ErrNotFound)
	}
	return nil
}
