package topic

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	topicRepo "tutorgo/database/repository/topic"
	"tutorgo/models"
)

// TopicService manages the catalog of tutoring topics. Writes are admin-only,
// enforced at the route layer.
type TopicService interface {
	Create(req models.TopicRequest) (*models.Topic, error)
	Get(id string) (*models.Topic, error)
	List() ([]models.Topic, error)
	Update(id string, req models.TopicRequest) (*models.Topic, error)
	Delete(id string) error
}

// DefaultTopicService is the production implementation.
type DefaultTopicService struct {
	Repo topicRepo.TopicRepository
}

func (s *DefaultTopicService) Create(req models.TopicRequest) (*models.Topic, error) {
	now := time.Now()
	topic := &models.Topic{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return topic, nil
}

func (s *DefaultTopicService) Get(id string) (*models.Topic, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultTopicService) List() ([]models.Topic, error) {
	return s.Repo.GetAll()
}

func (s *DefaultTopicService) Update(id string, req models.TopicRequest) (*models.Topic, error) {
	topic, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		topic.Name = req.Name
	}
	if req.Description != "" {
		topic.Description = req.Description
	}
	topic.UpdatedAt = time.Now()
	if err := s.Repo.Update(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *DefaultTopicService) Delete(id string) error {
	return s.Repo.Delete(id)
}
