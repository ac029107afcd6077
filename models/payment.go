package models

import "time"

// Payment lifecycle states.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

// Payment methods.
const (
	PaymentMethodCard = "CARD"
)

// Payment records a charge for a session, including the platform commission.
type Payment struct {
	ID         string    `bson:"id" json:"id"`
	SessionID  string    `bson:"session_id" json:"sessionId"`
	StudentID  string    `bson:"student_id" json:"studentId"`
	TutorID    string    `bson:"tutor_id" json:"tutorId"`
	Amount     float64   `bson:"amount" json:"amount"`
	Commission float64   `bson:"commission" json:"commission"`
	Currency   string    `bson:"currency" json:"currency"`
	Method     string    `bson:"method" json:"method"`
	Status     string    `bson:"status" json:"status"`
	ChargeID   string    `bson:"charge_id,omitempty" json:"chargeId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ConfirmPaymentRequest carries the Stripe card token used to settle a session.
type ConfirmPaymentRequest struct {
	Token  string `json:"token" binding:"required"`
	Method string `json:"method,omitempty"`
}

// PagedPayments is a page of payment history.
type PagedPayments struct {
	Items      []Payment `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"totalPages"`
}
