package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	notificationRepo "tutorgo/database/repository/notification"
	"tutorgo/models"
	"tutorgo/utils"
)

// NotificationService defines methods for creating and reading in-app
// notifications.
type NotificationService interface {
	Notify(userID, ntype, title, body string, data map[string]any) error
	ListForUser(userID string) ([]models.Notification, error)
	MarkRead(id, userID string) error
	UnreadCount(userID string) (int64, error)
	// DeliverSessionReminder fans a scheduled reminder out to both parties.
	DeliverSessionReminder(payload models.ReminderPayload) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func (s *DefaultNotificationService) Notify(userID, ntype, title, body string, data map[string]any) error {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Body:      body,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(n); err != nil {
		utils.GetLogger().Error("Notify: failed to persist notification",
			zap.String("userID", userID), zap.String("type", ntype), zap.Error(err))
		return err
	}
	return nil
}

func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID)
}

func (s *DefaultNotificationService) MarkRead(id, userID string) error {
	return s.Repo.MarkRead(id, userID)
}

func (s *DefaultNotificationService) UnreadCount(userID string) (int64, error) {
	return s.Repo.CountUnread(userID)
}

func (s *DefaultNotificationService) DeliverSessionReminder(payload models.ReminderPayload) error {
	body := fmt.Sprintf("Your tutoring session on %s starts at %s.", payload.Date, payload.StartTime)
	data := map[string]any{"sessionId": payload.SessionID}

	if err := s.Notify(payload.StudentID, models.NotificationSessionReminder, "Session reminder", body, data); err != nil {
		return err
	}
	return s.Notify(payload.TutorID, models.NotificationSessionReminder, "Session reminder", body, data)
}
