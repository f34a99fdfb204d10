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

// CommentRepository represents the MongoDB implementation of the ICommentRepository interface.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates and returns a new CommentRepository instance.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

// Create inserts a new comment record.
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID retrieves a single comment.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("comment %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve comment: %w", err)
	}
	return &comment, nil
}

// ListByPost retrieves comments for a post, oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string, status entity.CommentStatus) ([]*entity.Comment, error) {
	filter := bson.M{"post_id": postID}
	if status != "" {
		filter["status"] = string(status)
	}
	return r.findMany(ctx, filter)
}

// ListByStatus retrieves comments across all posts for the moderation queue.
func (r *CommentRepository) ListByStatus(ctx context.Context, status entity.CommentStatus) ([]*entity.Comment, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	return r.findMany(ctx, filter)
}

func (r *CommentRepository) findMany(ctx context.Context, filter bson.M) ([]*entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}

// UpdateStatus moves a comment through the moderation flow.
func (r *CommentRepository) UpdateStatus(ctx context.Context, id string, status entity.CommentStatus) error {
	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update comment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("comment %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// Delete permanently removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("comment %s: %w", id, entity.ErrNotFound)
	}
	return nil
}
