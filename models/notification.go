package models

import "time"

// Notification kinds.
const (
	NotificationSessionReserved  = "session_reserved"
	NotificationPaymentConfirmed = "payment_confirmed"
	NotificationSessionReminder  = "session_reminder"
	NotificationSessionCancelled = "session_cancelled"
)

// Notification is an in-app message persisted per user.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"user_id" json:"userId"`
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Body      string         `bson:"body" json:"body"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for a scheduled session reminder.
type ReminderPayload struct {
	SessionID string `json:"sessionId"`
	StudentID string `json:"studentId"`
	TutorID   string `json:"tutorId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}
