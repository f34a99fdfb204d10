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

// CommunityRepository represents the MongoDB implementation of the ICommunityRepository interface.
type CommunityRepository struct {
	collection *mongo.Collection
}

// NewCommunityRepository creates and returns a new CommunityRepository instance.
func NewCommunityRepository(db *mongo.Database) *CommunityRepository {
	return &CommunityRepository{
		collection: db.Collection("community_posts"),
	}
}

var _ contract.ICommunityRepository = (*CommunityRepository)(nil)

// Create inserts a new community post record.
func (r *CommunityRepository) Create(ctx context.Context, post *entity.CommunityPost) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if post.Tags == nil {
		post.Tags = []string{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create community post: %w", err)
	}
	return nil
}

// GetByID retrieves a single community post, excluding soft-deleted records.
func (r *CommunityRepository) GetByID(ctx context.Context, id string) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	filter := bson.M{"_id": id, "is_deleted": false}

	err := r.collection.FindOne(ctx, filter).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("community post %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve community post: %w", err)
	}
	return &post, nil
}

// List retrieves community posts newest first, excluding soft-deleted records.
func (r *CommunityRepository) List(ctx context.Context, limit int64) ([]*entity.CommunityPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"is_deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve community posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.CommunityPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode community posts: %w", err)
	}
	if posts == nil {
		posts = []*entity.CommunityPost{}
	}
	return posts, nil
}

// Update applies the given field patch to an existing community post.
func (r *CommunityRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": id, "is_deleted": false}

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update community post: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("community post %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a community post as deleted without removing the document.
func (r *CommunityRepository) SoftDelete(ctx context.Context, id string) error {
	filter := bson.M{"_id": id, "is_deleted": false}
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete community post: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("community post %s: %w", id, entity.ErrNotFound)
	}
	return nil
}
