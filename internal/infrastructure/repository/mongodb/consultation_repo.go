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

// ConsultationRepository represents the MongoDB implementation of the IConsultationRepository interface.
type ConsultationRepository struct {
	collection *mongo.Collection
}

// NewConsultationRepository creates and returns a new ConsultationRepository instance.
func NewConsultationRepository(db *mongo.Database) *ConsultationRepository {
	return &ConsultationRepository{
		collection: db.Collection("consultations"),
	}
}

var _ contract.IConsultationRepository = (*ConsultationRepository)(nil)

// Create inserts a new consultation request.
func (r *ConsultationRepository) Create(ctx context.Context, c *entity.Consultation) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create consultation request: %w", err)
	}
	return nil
}

// GetByID retrieves a single consultation request.
func (r *ConsultationRepository) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	var c entity.Consultation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("consultation %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve consultation: %w", err)
	}
	return &c, nil
}

// List retrieves consultation requests newest first, optionally restricted to one status.
func (r *ConsultationRepository) List(ctx context.Context, status entity.ConsultationStatus) ([]*entity.Consultation, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*entity.Consultation
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	if items == nil {
		items = []*entity.Consultation{}
	}
	return items, nil
}

// UpdateStatus moves a consultation request through the triage flow and
// records an optional note.
func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id string, status entity.ConsultationStatus, note string) error {
	updates := bson.M{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if note != "" {
		updates["note"] = note
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update consultation status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("consultation %s: %w", id, entity.ErrNotFound)
	}
	return nil
}
