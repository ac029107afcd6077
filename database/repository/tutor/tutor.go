package tutorRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorgo/database"
	"tutorgo/models"
)

// TutorRepository defines methods for tutor profile data access.
type TutorRepository interface {
	Create(tutor *models.Tutor) error
	GetByID(id string) (*models.Tutor, error)
	// GetByUserID retrieves the tutor profile owned by an account; nil when absent.
	GetByUserID(userID string) (*models.Tutor, error)
	Update(tutor *models.Tutor) error
	// UpdateRating overwrites the aggregate rating and review count.
	UpdateRating(id string, rating float64, reviewCount int) error
	GetAll() ([]models.Tutor, error)
	// FindWithFilters applies the free-text and numeric search filters. Date and
	// time availability filtering happens in the service layer.
	FindWithFilters(query string, maxRate, minRating float64) ([]models.Tutor, error)
}

// MongoTutorRepo implements TutorRepository using MongoDB.
type MongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo creates a new instance of TutorRepository using MongoDB.
func NewMongoTutorRepo() TutorRepository {
	repo := &MongoTutorRepo{coll: database.Collection("tutors")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create tutor indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTutorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hourly_rate", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTutorRepo) Create(tutor *models.Tutor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, tutor); err != nil {
		return fmt.Errorf("failed to insert tutor: %w", err)
	}
	return nil
}

func (r *MongoTutorRepo) GetByID(id string) (*models.Tutor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tutor); err != nil {
		return nil, fmt.Errorf("failed to fetch tutor with id %s: %w", id, err)
	}
	return &tutor, nil
}

func (r *MongoTutorRepo) GetByUserID(userID string) (*models.Tutor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tutor models.Tutor
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&tutor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor for user %s: %w", userID, err)
	}
	return &tutor, nil
}

func (r *MongoTutorRepo) Update(tutor *models.Tutor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": tutor.ID}, tutor)
	if err != nil {
		return fmt.Errorf("failed to update tutor %s: %w", tutor.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("tutor %s not found", tutor.ID)
	}
	return nil
}

func (r *MongoTutorRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":       rating,
		"review_count": reviewCount,
		"updated_at":   time.Now(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update rating for tutor %s: %w", id, err)
	}
	return nil
}

func (r *MongoTutorRepo) GetAll() ([]models.Tutor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tutors: %w", err)
	}
	defer cursor.Close(ctx)

	var tutors []models.Tutor
	if err := cursor.All(ctx, &tutors); err != nil {
		return nil, fmt.Errorf("failed to decode tutors: %w", err)
	}
	return tutors, nil
}

func (r *MongoTutorRepo) FindWithFilters(query string, maxRate, minRating float64) ([]models.Tutor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if maxRate > 0 {
		filter["hourly_rate"] = bson.M{"$lte": maxRate}
	}
	if minRating > 0 {
		filter["rating"] = bson.M{"$gte": minRating}
	}
	if query != "" {
		re := primitive.Regex{Pattern: query, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": re}},
			bson.M{"field": bson.M{"$regex": re}},
		}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to search tutors: %w", err)
	}
	defer cursor.Close(ctx)

	var tutors []models.Tutor
	if err := cursor.All(ctx, &tutors); err != nil {
		return nil, fmt.Errorf("failed to decode tutors: %w", err)
	}
	return tutors, nil
}
