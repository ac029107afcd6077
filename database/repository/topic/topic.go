package topicRepo

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

// TopicRepository defines data access for tutoring topics.
type TopicRepository interface {
	Create(topic *models.Topic) error
	GetByID(id string) (*models.Topic, error)
	GetByIDs(ids []string) ([]models.Topic, error)
	GetAll() ([]models.Topic, error)
	Update(topic *models.Topic) error
	Delete(id string) error
}

// MongoTopicRepo implements TopicRepository using MongoDB.
type MongoTopicRepo struct {
	coll *mongo.Collection
}

// NewMongoTopicRepo creates a new TopicRepository using MongoDB.
func NewMongoTopicRepo() TopicRepository {
	repo := &MongoTopicRepo{coll: database.Collection("topics")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create topic indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTopicRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTopicRepo) Create(topic *models.Topic) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, topic); err != nil {
		return fmt.Errorf("failed to insert topic: %w", err)
	}
	return nil
}

func (r *MongoTopicRepo) GetByID(id string) (*models.Topic, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var topic models.Topic
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&topic); err != nil {
		return nil, fmt.Errorf("failed to fetch topic %s: %w", id, err)
	}
	return &topic, nil
}

func (r *MongoTopicRepo) GetByIDs(ids []string) ([]models.Topic, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer cursor.Close(ctx)

	var topics []models.Topic
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, fmt.Errorf("failed to decode topics: %w", err)
	}
	return topics, nil
}

func (r *MongoTopicRepo) GetAll() ([]models.Topic, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer cursor.Close(ctx)

	var topics []models.Topic
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, fmt.Errorf("failed to decode topics: %w", err)
	}
	return topics, nil
}

func (r *MongoTopicRepo) Update(topic *models.Topic) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": topic.ID}, topic)
	if err != nil {
		return fmt.Errorf("failed to update topic %s: %w", topic.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("topic %s not found", topic.ID)
	}
	return nil
}

func (r *MongoTopicRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete topic %s: %w", id, err)
	}
	return nil
}
