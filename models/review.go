package models

import "time"

// Review is a student's one-off rating of a confirmed session.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"session_id" json:"sessionId"`
	TutorID   string    `bson:"tutor_id" json:"tutorId"`
	StudentID string    `bson:"student_id" json:"studentId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ReviewRequest is the payload for review creation.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment,omitempty"`
}
