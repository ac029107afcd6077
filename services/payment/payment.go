package payment

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorgo/config"
	availabilityRepo "tutorgo/database/repository/availability"
	paymentRepo "tutorgo/database/repository/payment"
	sessionRepo "tutorgo/database/repository/session"
	tutorRepo "tutorgo/database/repository/tutor"
	"tutorgo/models"
	"tutorgo/services/notification"
	"tutorgo/utils"
)

// ReminderScheduler schedules a session reminder for delivery at fireAt.
type ReminderScheduler func(payload models.ReminderPayload, fireAt time.Time) error

// PaymentService settles sessions: pending payment creation, card
// confirmation, and payment history.
type PaymentService interface {
	CreatePendingPayment(studentID, sessionID string) (*models.Payment, error)
	ConfirmPayment(studentID, sessionID string, req models.ConfirmPaymentRequest) (*models.Payment, error)
	// History returns payments made (students) or received (tutors).
	History(userID, role string, page, pageSize int) (*models.PagedPayments, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	PaymentRepo      paymentRepo.PaymentRepository
	SessionRepo      sessionRepo.SessionRepository
	TutorRepo        tutorRepo.TutorRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	NotificationSvc  notification.NotificationService
	Processor        CardProcessor
	ScheduleReminder ReminderScheduler
}

// sessionAmount prices a session the way payments are settled: the hourly rate
// broken into a two-decimal per-minute rate times the session length, plus the
// platform commission on top of the total.
func sessionAmount(hourlyRate float64, minutes int) (amount, commission float64) {
	perMinute := utils.Round2(hourlyRate / 60)
	amount = utils.Round2(perMinute * float64(minutes))
	commission = utils.Round2(amount * config.AppConfig.PlatformCommissionRate)
	return amount, commission
}

// loadPayableSession fetches the session and enforces ownership and state.
func (s *DefaultPaymentService) loadPayableSession(studentID, sessionID string) (*models.Session, *models.Tutor, error) {
	session, err := s.SessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, nil, NewPaymentError("Session not found.")
	}
	if session.StudentID != studentID {
		return nil, nil, NewPaymentError("You do not have permission to pay for this session.")
	}
	if session.Status != models.SessionPending {
		return nil, nil, NewPaymentError("This session is not pending payment or has already been processed.")
	}

	tutor, err := s.TutorRepo.GetByID(session.TutorID)
	if err != nil {
		return nil, nil, fmt.Errorf("session %s has no tutor attached: %w", sessionID, err)
	}
	if session.End-session.Start <= 0 {
		return nil, nil, NewPaymentError("The session duration is invalid.")
	}
	return session, tutor, nil
}

func (s *DefaultPaymentService) CreatePendingPayment(studentID, sessionID string) (*models.Payment, error) {
	session, tutor, err := s.loadPayableSession(studentID, sessionID)
	if err != nil {
		return nil, err
	}

	amount, commission := sessionAmount(tutor.HourlyRate, session.End-session.Start)
	now := time.Now()
	payment := &models.Payment{
		ID:         uuid.New().String(),
		SessionID:  session.ID,
		StudentID:  studentID,
		TutorID:    tutor.ID,
		Amount:     amount,
		Commission: commission,
		Currency:   config.AppConfig.Currency,
		Method:     models.PaymentMethodCard,
		Status:     models.PaymentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.PaymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create pending payment: %w", err)
	}
	return payment, nil
}

// ConfirmPayment charges the provided card token, marks the payment completed
// and the session confirmed, removes the booked span from the tutor's
// availability, notifies both parties and schedules the 24h reminder.
func (s *DefaultPaymentService) ConfirmPayment(studentID, sessionID string, req models.ConfirmPaymentRequest) (*models.Payment, error) {
	logger := utils.GetLogger()

	session, tutor, err := s.loadPayableSession(studentID, sessionID)
	if err != nil {
		return nil, err
	}
	if req.Token == "" {
		return nil, NewPaymentError("No card token provided.")
	}

	amount, commission := sessionAmount(tutor.HourlyRate, session.End-session.Start)
	cents := int64(math.Round(amount * 100))

	chargeID, err := s.Processor.Charge(req.Token, cents, config.AppConfig.Currency, "TutorGo session payment")
	if err != nil {
		logger.Warn("ConfirmPayment: charge rejected",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, NewPaymentError("The payment was declined.")
	}

	now := time.Now()
	payment, err := s.PaymentRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	isNew := payment == nil
	if isNew {
		payment = &models.Payment{
			ID:        uuid.New().String(),
			SessionID: session.ID,
			StudentID: studentID,
			TutorID:   tutor.ID,
			Currency:  config.AppConfig.Currency,
			CreatedAt: now,
		}
	}
	payment.Amount = amount
	payment.Commission = commission
	payment.Method = models.PaymentMethodCard
	payment.Status = models.PaymentCompleted
	payment.ChargeID = chargeID
	payment.UpdatedAt = now

	if isNew {
		err = s.PaymentRepo.Create(payment)
	} else {
		err = s.PaymentRepo.Update(payment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	session.Status = models.SessionConfirmed
	session.UpdatedAt = now
	if err := s.SessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to confirm session: %w", err)
	}

	if err := s.adjustTutorAvailability(session); err != nil {
		logger.Warn("ConfirmPayment: could not adjust tutor availability",
			zap.String("sessionID", session.ID), zap.Error(err))
	}

	s.notifyConfirmation(session, tutor, payment)
	s.scheduleReminder(session, tutor)

	logger.Info("Payment confirmed",
		zap.String("paymentID", payment.ID),
		zap.String("sessionID", session.ID),
		zap.Float64("amount", amount))
	return payment, nil
}

// adjustTutorAvailability removes the confirmed session's span from the
// enveloping availability block, trimming or splitting it as needed.
func (s *DefaultPaymentService) adjustTutorAvailability(session *models.Session) error {
	blocks, err := s.AvailabilityRepo.ListByTutorAndDate(session.TutorID, session.Date)
	if err != nil {
		return err
	}

	var enclosing *models.AvailabilityBlock
	for i := range blocks {
		if blocks[i].Start <= session.Start && session.End <= blocks[i].End {
			enclosing = &blocks[i]
			break
		}
	}
	if enclosing == nil {
		return fmt.Errorf("no availability block envelops session %s", session.ID)
	}

	remaining := remainderAfterBooking(*enclosing, session.Start, session.End)
	if len(remaining) == 0 {
		return s.AvailabilityRepo.Delete(enclosing.ID)
	}

	// The first remaining piece reuses the original block's identity.
	if err := s.AvailabilityRepo.Update(&remaining[0]); err != nil {
		return err
	}
	if len(remaining) > 1 {
		return s.AvailabilityRepo.Create(&remaining[1])
	}
	return nil
}

func (s *DefaultPaymentService) notifyConfirmation(session *models.Session, tutor *models.Tutor, payment *models.Payment) {
	if s.NotificationSvc == nil {
		return
	}
	data := map[string]any{"sessionId": session.ID, "paymentId": payment.ID}
	studentBody := fmt.Sprintf("Payment of %.2f %s confirmed for your session on %s at %s.",
		payment.Amount, payment.Currency, session.Date, utils.MinutesToClock(session.Start))
	_ = s.NotificationSvc.Notify(session.StudentID, models.NotificationPaymentConfirmed,
		"Payment confirmed", studentBody, data)

	tutorBody := fmt.Sprintf("Your session on %s at %s is confirmed and paid.",
		session.Date, utils.MinutesToClock(session.Start))
	_ = s.NotificationSvc.Notify(tutor.UserID, models.NotificationPaymentConfirmed,
		"Session confirmed", tutorBody, data)
}

func (s *DefaultPaymentService) scheduleReminder(session *models.Session, tutor *models.Tutor) {
	if s.ScheduleReminder == nil {
		return
	}
	startAt, err := utils.CombineDateAndMinutes(session.Date, session.Start, time.Local)
	if err != nil {
		return
	}
	payload := models.ReminderPayload{
		SessionID: session.ID,
		StudentID: session.StudentID,
		TutorID:   tutor.UserID,
		Date:      session.Date,
		StartTime: utils.MinutesToClock(session.Start),
	}
	if err := s.ScheduleReminder(payload, startAt.Add(-24*time.Hour)); err != nil {
		utils.GetLogger().Warn("scheduleReminder: failed to enqueue reminder",
			zap.String("sessionID", session.ID), zap.Error(err))
	}
}

func (s *DefaultPaymentService) History(userID, role string, page, pageSize int) (*models.PagedPayments, error) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	var (
		items []models.Payment
		total int64
		err   error
	)
	switch role {
	case models.RoleTutor:
		tutor, terr := s.TutorRepo.GetByUserID(userID)
		if terr != nil || tutor == nil {
			return nil, NewPaymentError("Tutor profile not found.")
		}
		items, total, err = s.PaymentRepo.ListByTutor(tutor.ID, page, pageSize)
	default:
		items, total, err = s.PaymentRepo.ListByStudent(userID, page, pageSize)
	}
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return &models.PagedPayments{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
