package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorgo/database"
	"tutorgo/models"
)

// AvailabilityRepository defines data access for tutor availability blocks.
type AvailabilityRepository interface {
	Create(block *models.AvailabilityBlock) error
	GetByID(id string) (*models.AvailabilityBlock, error)
	Update(block *models.AvailabilityBlock) error
	Delete(id string) error
	// ListByTutor returns a tutor's blocks ordered by date then start time.
	ListByTutor(tutorID string) ([]models.AvailabilityBlock, error)
	// ListByTutorAndDate returns a tutor's blocks on a single date.
	ListByTutorAndDate(tutorID, date string) ([]models.AvailabilityBlock, error)
}

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{coll: database.Collection("availability")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tutor_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) Create(block *models.AvailabilityBlock) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to insert availability block: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) GetByID(id string) (*models.AvailabilityBlock, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var block models.AvailabilityBlock
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&block); err != nil {
		return nil, fmt.Errorf("failed to fetch availability block %s: %w", id, err)
	}
	return &block, nil
}

func (r *MongoAvailabilityRepo) Update(block *models.AvailabilityBlock) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": block.ID}, block)
	if err != nil {
		return fmt.Errorf("failed to update availability block %s: %w", block.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("availability block %s not found", block.ID)
	}
	return nil
}

func (r *MongoAvailabilityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete availability block %s: %w", id, err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) ListByTutor(tutorID string) ([]models.AvailabilityBlock, error) {
	return r.find(bson.M{"tutor_id": tutorID})
}

func (r *MongoAvailabilityRepo) ListByTutorAndDate(tutorID, date string) ([]models.AvailabilityBlock, error) {
	return r.find(bson.M{"tutor_id": tutorID, "date": date})
}

func (r *MongoAvailabilityRepo) find(filter bson.M) ([]models.AvailabilityBlock, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode availability blocks: %w", err)
	}
	return blocks, nil
}
