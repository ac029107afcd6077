package models

import "time"

// Session lifecycle states.
const (
	SessionPending   = "PENDING"
	SessionConfirmed = "CONFIRMED"
	SessionCancelled = "CANCELLED"
)

// Session is a booked (pending or paid) tutoring session. Start and End are
// minutes from midnight on Date.
type Session struct {
	ID        string    `bson:"id" json:"id"`
	StudentID string    `bson:"student_id" json:"studentId"`
	TutorID   string    `bson:"tutor_id" json:"tutorId"`
	TutorName string    `bson:"tutor_name,omitempty" json:"tutorName,omitempty"`
	Date      string    `bson:"date" json:"date"`
	Start     int       `bson:"start" json:"start"`
	End       int       `bson:"end" json:"end"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReservationRequest is the wire payload to create a pending session. Times are
// "HH:MM:SS" (seconds optional on input).
type ReservationRequest struct {
	TutorID   string `json:"tutorId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// ReservationResponse is the envelope returned by the reserve endpoint.
type ReservationResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *Session `json:"data,omitempty"`
}

// PriceQuote is the derived price for a prospective session. Never persisted.
type PriceQuote struct {
	HourlyRate    float64 `json:"hourlyRate"`
	DurationHours int     `json:"durationHours"`
	Total         float64 `json:"total"`
	Display       string  `json:"display"` // two-decimal presentation of Total
}
