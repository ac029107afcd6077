package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorgo/models"
	"tutorgo/utils"
)

func (s *DefaultBookingService) GetTutorAvailability(tutorID string) ([]models.AvailabilityBlock, error) {
	return s.AvailabilityRepo.ListByTutor(tutorID)
}

// Reserve creates a pending session for a student. It re-applies server-side
// the rules the interactive flow cannot enforce on its own: the requested span
// must sit inside one of the tutor's published blocks and must not collide with
// an existing session of either party.
func (s *DefaultBookingService) Reserve(studentID string, req models.ReservationRequest) (*models.Session, error) {
	logger := utils.GetLogger()

	tutor, err := s.TutorRepo.GetByID(req.TutorID)
	if err != nil {
		return nil, NewReservationError("Tutor not found.")
	}

	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, NewReservationError("Invalid session date.")
	}
	start, err := utils.ClockToMinutes(req.StartTime)
	if err != nil {
		return nil, NewReservationError("Invalid start time.")
	}
	end, err := utils.ClockToMinutes(req.EndTime)
	if err != nil {
		return nil, NewReservationError("Invalid end time.")
	}
	if end <= start {
		return nil, NewReservationError("End time must be after the start time.")
	}

	blocks, err := s.AvailabilityRepo.ListByTutorAndDate(req.TutorID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor availability: %w", err)
	}
	available := false
	for _, b := range blocks {
		if start >= b.Start && end <= b.End {
			available = true
			break
		}
	}
	if !available {
		return nil, NewReservationError("The tutor is not available at the selected date and time.")
	}

	taken, err := s.SessionRepo.FindOverlappingForTutor(req.TutorID, req.Date, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check tutor sessions: %w", err)
	}
	if len(taken) > 0 {
		return nil, NewReservationError("The selected time slot is no longer available.")
	}

	clashes, err := s.SessionRepo.FindOverlappingForStudent(studentID, req.Date, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check student sessions: %w", err)
	}
	if len(clashes) > 0 {
		return nil, NewReservationError("You already have a session that overlaps this time.")
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		StudentID: studentID,
		TutorID:   req.TutorID,
		TutorName: tutor.Name,
		Date:      req.Date,
		Start:     start,
		End:       end,
		Status:    models.SessionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if s.NotificationSvc != nil {
		body := fmt.Sprintf("A student reserved a session on %s from %s to %s.",
			req.Date, utils.MinutesToClock(start), utils.MinutesToClock(end))
		if err := s.NotificationSvc.Notify(tutor.UserID, models.NotificationSessionReserved,
			"New session reserved", body, map[string]any{"sessionId": session.ID}); err != nil {
			logger.Warn("Reserve: failed to notify tutor", zap.Error(err))
		}
	}

	logger.Info("Session reserved",
		zap.String("sessionID", session.ID),
		zap.String("tutorID", req.TutorID),
		zap.String("date", req.Date))
	return session, nil
}

func (s *DefaultBookingService) ListStudentSessions(studentID string) ([]models.Session, error) {
	return s.SessionRepo.ListByStudent(studentID)
}

func (s *DefaultBookingService) ListTutorSessions(tutorID string) ([]models.Session, error) {
	return s.SessionRepo.ListByTutor(tutorID)
}

// CancelSession cancels a student's own pending session. Confirmed sessions
// are already paid and need the support path instead.
func (s *DefaultBookingService) CancelSession(studentID, sessionID string) error {
	session, err := s.SessionRepo.GetByID(sessionID)
	if err != nil {
		return NewReservationError("Session not found.")
	}
	if session.StudentID != studentID {
		return NewReservationError("You do not own this session.")
	}
	if session.Status != models.SessionPending {
		return NewReservationError("Only pending sessions can be cancelled.")
	}

	session.Status = models.SessionCancelled
	session.UpdatedAt = time.Now()
	if err := s.SessionRepo.Update(session); err != nil {
		return fmt.Errorf("failed to cancel session: %w", err)
	}

	if s.NotificationSvc != nil {
		if tutor, terr := s.TutorRepo.GetByID(session.TutorID); terr == nil {
			body := fmt.Sprintf("The session on %s at %s was cancelled.",
				session.Date, utils.MinutesToClock(session.Start))
			_ = s.NotificationSvc.Notify(tutor.UserID, models.NotificationSessionCancelled,
				"Session cancelled", body, map[string]any{"sessionId": session.ID})
		}
	}
	return nil
}

// reservationMessage unwraps the user-facing text of a failed reservation so
// the flow can surface it verbatim.
func reservationMessage(err error) string {
	var resErr *ReservationError
	if errors.As(err, &resErr) {
		return resErr.Message
	}
	return err.Error()
}
