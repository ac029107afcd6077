package models

import "time"

// AvailabilityBlock is a tutor-declared contiguous bookable span on a single
// date. Start and End are minutes from midnight (e.g. 540 for 09:00).
type AvailabilityBlock struct {
	ID        string    `bson:"id" json:"id"`
	TutorID   string    `bson:"tutor_id" json:"tutorId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start     int       `bson:"start" json:"start"`
	End       int       `bson:"end" json:"end"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// StartTimeOption is one selectable hourly session start within a block.
// Derived, never persisted.
type StartTimeOption struct {
	Minute int    `json:"minute"`
	Label  string `json:"label"` // "HH:MM:SS"
}

// AvailabilityRequest is the payload for availability block creation/update.
// Times come in as "HH:MM" or "HH:MM:SS" clock strings.
type AvailabilityRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}
