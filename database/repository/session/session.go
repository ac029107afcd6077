package sessionRepo

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

// SessionRepository defines data access for booked sessions.
type SessionRepository interface {
	Create(session *models.Session) error
	GetByID(id string) (*models.Session, error)
	Update(session *models.Session) error
	ListByStudent(studentID string) ([]models.Session, error)
	ListByTutor(tutorID string) ([]models.Session, error)
	// FindOverlappingForTutor returns non-cancelled sessions of a tutor on a date
	// overlapping the [start, end) span.
	FindOverlappingForTutor(tutorID, date string, start, end int) ([]models.Session, error)
	// FindOverlappingForStudent is the student-side counterpart.
	FindOverlappingForStudent(studentID, date string, start, end int) ([]models.Session, error)
}

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	repo := &MongoSessionRepo{coll: database.Collection("sessions")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create session indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tutor_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) Create(session *models.Session) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) GetByID(id string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) Update(session *models.Session) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": session.ID}, session)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", session.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("session %s not found", session.ID)
	}
	return nil
}

func (r *MongoSessionRepo) ListByStudent(studentID string) ([]models.Session, error) {
	return r.find(bson.M{"student_id": studentID})
}

func (r *MongoSessionRepo) ListByTutor(tutorID string) ([]models.Session, error) {
	return r.find(bson.M{"tutor_id": tutorID})
}

func (r *MongoSessionRepo) FindOverlappingForTutor(tutorID, date string, start, end int) ([]models.Session, error) {
	return r.findOverlapping(bson.M{"tutor_id": tutorID}, date, start, end)
}

func (r *MongoSessionRepo) FindOverlappingForStudent(studentID, date string, start, end int) ([]models.Session, error) {
	return r.findOverlapping(bson.M{"student_id": studentID}, date, start, end)
}

// findOverlapping matches sessions on date where existing.start < end and
// existing.end > start, excluding cancelled ones.
func (r *MongoSessionRepo) findOverlapping(owner bson.M, date string, start, end int) ([]models.Session, error) {
	filter := bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.SessionCancelled},
		"start":  bson.M{"$lt": end},
		"end":    bson.M{"$gt": start},
	}
	for k, v := range owner {
		filter[k] = v
	}
	return r.find(filter)
}

func (r *MongoSessionRepo) find(filter bson.M) ([]models.Session, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}
