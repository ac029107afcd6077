package paymentRepo

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

// PaymentRepository defines data access for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	// GetBySessionID returns the payment attached to a session; nil when absent.
	GetBySessionID(sessionID string) (*models.Payment, error)
	// ListByStudent returns a page of payments made by a student, newest first.
	ListByStudent(studentID string, page, pageSize int) ([]models.Payment, int64, error)
	// ListByTutor returns a page of payments received by a tutor, newest first.
	ListByTutor(tutorID string, page, pageSize int) ([]models.Payment, int64, error)
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	repo := &MongoPaymentRepo{coll: database.Collection("payments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "session_id", Value: 1}}},
		{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tutor_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) Update(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": payment.ID}, payment)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", payment.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("payment %s not found", payment.ID)
	}
	return nil
}

func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		return nil, fmt.Errorf("failed to fetch payment %s: %w", id, err)
	}
	return &payment, nil
}

func (r *MongoPaymentRepo) GetBySessionID(sessionID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for session %s: %w", sessionID, err)
	}
	return &payment, nil
}

func (r *MongoPaymentRepo) ListByStudent(studentID string, page, pageSize int) ([]models.Payment, int64, error) {
	return r.page(bson.M{"student_id": studentID}, page, pageSize)
}

func (r *MongoPaymentRepo) ListByTutor(tutorID string, page, pageSize int) ([]models.Payment, int64, error) {
	return r.page(bson.M{"tutor_id": tutorID}, page, pageSize)
}

func (r *MongoPaymentRepo) page(filter bson.M, page, pageSize int) ([]models.Payment, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, 0, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, total, nil
}
