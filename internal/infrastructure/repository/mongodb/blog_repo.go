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

// BlogRepository represents the MongoDB implementation of the IBlogRepository interface.
type BlogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates and returns a new BlogRepository instance.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection("blog_posts"),
	}
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

// EnsureIndexes creates the unique slug index. Slug uniqueness is enforced
// here, at the store, instead of with a racy check-then-insert.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create slug index: %w", err)
	}
	return nil
}

// Create inserts a new blog post document.
func (r *BlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	if post.Category == nil {
		post.Category = []string{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	_, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slug %q already in use: %w", post.Slug, entity.ErrConflict)
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBySlug retrieves a single post by its slug.
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// GetByID retrieves a single post by its document id.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*entity.BlogPost, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("blog post matching %v: %w", filter, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}
	return FormatBlogPost(doc), nil
}

// ListPublished retrieves published posts, newest first. The limit, category
// restriction, and trending ordering are pushed down to the store.
func (r *BlogRepository) ListPublished(ctx context.Context, listOpts *contract.BlogListOptions) ([]*entity.BlogPost, error) {
	filter := bson.M{"status": string(entity.BlogStatusPublished)}
	sort := bson.D{{Key: "published_at", Value: -1}}

	if listOpts != nil {
		if listOpts.Category != "" && listOpts.Category != contract.CategoryAll {
			// Equality against an array field matches membership.
			filter["category"] = listOpts.Category
		}
		if listOpts.Trending {
			filter["is_trending"] = true
			sort = bson.D{{Key: "trending_order", Value: 1}, {Key: "published_at", Value: -1}}
		}
	}

	opts := options.Find().SetSort(sort)
	if listOpts != nil && listOpts.Limit > 0 {
		opts.SetLimit(listOpts.Limit)
	}

	return r.findMany(ctx, filter, opts)
}

// ListAll retrieves every post regardless of status, newest first.
func (r *BlogRepository) ListAll(ctx context.Context) ([]*entity.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	return r.findMany(ctx, bson.M{}, opts)
}

func (r *BlogRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.BlogPost, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}

	posts := make([]*entity.BlogPost, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, FormatBlogPost(doc))
	}
	return posts, nil
}

// Update applies the field patch, refreshes updated_at, and bumps the version
// counter. With a non-nil expectedVersion the write only matches when the
// stored version is still the expected one.
func (r *BlogRepository) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int64) error {
	patch := bson.M{}
	for k, v := range updates {
		if k == "version" || k == "_id" {
			continue
		}
		patch[k] = v
	}
	patch["updated_at"] = time.Now()

	filter := bson.M{"_id": id}
	if expectedVersion != nil {
		filter["version"] = *expectedVersion
	}
	update := bson.M{
		"$set": patch,
		"$inc": bson.M{"version": 1},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slug already in use: %w", entity.ErrConflict)
		}
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if res.MatchedCount == 0 {
		if expectedVersion != nil {
			// Distinguish a missing document from a stale version.
			count, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": id})
			if countErr == nil && count > 0 {
				return fmt.Errorf("blog post %s changed since read: %w", id, entity.ErrConflict)
			}
		}
		return fmt.Errorf("blog post %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// Delete permanently removes the document. Blog posts are hard-deleted; any
// cleanup of referenced media or comments is the caller's responsibility.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blog post %s: %w", id, entity.ErrNotFound)
	}
	return nil
}
