package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	reviewRepo "tutorgo/database/repository/review"
	sessionRepo "tutorgo/database/repository/session"
	tutorRepo "tutorgo/database/repository/tutor"
	"tutorgo/models"
	"tutorgo/utils"
)

// ReviewService lets students rate completed sessions and keeps the tutor's
// aggregate rating current.
type ReviewService interface {
	CreateReview(studentID, sessionID string, req models.ReviewRequest) (*models.Review, error)
	ListByTutor(tutorID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	SessionRepo sessionRepo.SessionRepository
	TutorRepo   tutorRepo.TutorRepository
}

// CreateReview validates the rating, checks the session belongs to the student
// and was confirmed, stores the review and recomputes the tutor's aggregate.
func (s *DefaultReviewService) CreateReview(studentID, sessionID string, req models.ReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, NewReviewError("The rating must be between 1 and 5.")
	}
	if len(req.Comment) > 500 {
		return nil, NewReviewError("The comment must be at most 500 characters.")
	}

	session, err := s.SessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, NewReviewError("Session not found.")
	}
	if session.StudentID != studentID {
		return nil, NewReviewError("You can only review your own sessions.")
	}
	if session.Status != models.SessionConfirmed {
		return nil, NewReviewError("Only confirmed sessions can be reviewed.")
	}

	exists, err := s.Repo.ExistsBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewReviewError("This session has already been reviewed.")
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		SessionID: session.ID,
		TutorID:   session.TutorID,
		StudentID: studentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}

	if err := s.refreshTutorRating(session.TutorID); err != nil {
		utils.GetLogger().Warn("CreateReview: failed to refresh tutor rating",
			zap.String("tutorID", session.TutorID), zap.Error(err))
	}
	return review, nil
}

func (s *DefaultReviewService) refreshTutorRating(tutorID string) error {
	avg, count, err := s.Repo.AggregateForTutor(tutorID)
	if err != nil {
		return err
	}
	return s.TutorRepo.UpdateRating(tutorID, utils.Round2(avg), count)
}

func (s *DefaultReviewService) ListByTutor(tutorID string) ([]models.Review, error) {
	return s.Repo.ListByTutor(tutorID)
}
