package booking

import (
	"context"

	availabilityRepo "tutorgo/database/repository/availability"
	sessionRepo "tutorgo/database/repository/session"
	tutorRepo "tutorgo/database/repository/tutor"
	"tutorgo/models"
	"tutorgo/services/notification"
)

// BookingService drives the whole reservation surface: availability reads,
// the interactive booking flow, and session management.
type BookingService interface {
	// GetTutorAvailability lists a tutor's open blocks.
	GetTutorAvailability(tutorID string) ([]models.AvailabilityBlock, error)

	// Flow operations. Every operation verifies flow ownership.
	StartFlow(ctx context.Context, studentID, tutorID string) (*BookingFlow, []models.AvailabilityBlock, error)
	GetFlow(ctx context.Context, flowID, studentID string) (*BookingFlow, error)
	FlowSelectBlock(ctx context.Context, flowID, studentID, blockID string) (*BookingFlow, error)
	FlowChooseStart(ctx context.Context, flowID, studentID, clock string) (*BookingFlow, error)
	FlowSetDuration(ctx context.Context, flowID, studentID string, hours int) (*BookingFlow, error)
	FlowSubmit(ctx context.Context, flowID, studentID string) (*models.ReservationResponse, *BookingFlow, error)

	// Reserve creates a pending session after the server-side availability and
	// overlap checks pass.
	Reserve(studentID string, req models.ReservationRequest) (*models.Session, error)
	ListStudentSessions(studentID string) ([]models.Session, error)
	ListTutorSessions(tutorID string) ([]models.Session, error)
	CancelSession(studentID, sessionID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	SessionRepo      sessionRepo.SessionRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	TutorRepo        tutorRepo.TutorRepository
	Flows            *FlowStore
	NotificationSvc  notification.NotificationService
}
