package models

import "time"

// Roles a platform account can hold.
const (
	RoleStudent = "STUDENT"
	RoleTutor   = "TUTOR"
	RoleAdmin   = "ADMIN"
)

// User represents a platform account. Tutors additionally own a Tutor profile
// keyed by UserID.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=STUDENT TUTOR"`

	// Tutor-only profile fields, ignored for students.
	Field      string  `json:"field,omitempty"`
	Bio        string  `json:"bio,omitempty"`
	HourlyRate float64 `json:"hourlyRate,omitempty"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest updates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserUpdateRequest carries the editable profile fields.
type UserUpdateRequest struct {
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
