package models

import "time"

// Tutor is the public-facing tutoring profile attached to a TUTOR account.
type Tutor struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Name        string    `bson:"name" json:"name"` // denormalized from the account for search
	Field       string    `bson:"field" json:"field"`
	Bio         string    `bson:"bio,omitempty" json:"bio,omitempty"`
	HourlyRate  float64   `bson:"hourly_rate" json:"hourlyRate"`
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"review_count" json:"reviewCount"`
	TopicIDs    []string  `bson:"topic_ids,omitempty" json:"topicIds,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// TutorSearchFilter narrows tutor search results. Zero values mean "no filter".
type TutorSearchFilter struct {
	Query     string  // matches name or field, case-insensitive
	MaxRate   float64 // inclusive upper bound on hourly rate
	MinRating float64 // inclusive lower bound on aggregate rating
	DateFrom  string  // "YYYY-MM-DD"; tutors must have a block in range
	DateTo    string
	TimeFrom  int // minutes from midnight; blocks must overlap this window
	TimeTo    int
	Page      int
	PageSize  int
}

// TutorProfile is the full public view of a tutor, including topics and reviews.
type TutorProfile struct {
	Tutor   Tutor    `json:"tutor"`
	Topics  []Topic  `json:"topics"`
	Reviews []Review `json:"reviews"`
}

// PagedTutors is a page of tutor search results.
type PagedTutors struct {
	Items      []Tutor `json:"items"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"totalPages"`
	Last       bool    `json:"last"`
}
