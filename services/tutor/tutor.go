package tutor

import (
	"math"
	"time"

	"github.com/google/uuid"

	availabilityRepo "tutorgo/database/repository/availability"
	reviewRepo "tutorgo/database/repository/review"
	topicRepo "tutorgo/database/repository/topic"
	tutorRepo "tutorgo/database/repository/tutor"
	"tutorgo/models"
	"tutorgo/utils"
)

// TutorService covers the public tutor surface and tutor-side profile
// management.
type TutorService interface {
	Search(filter models.TutorSearchFilter) (*models.PagedTutors, error)
	ListAll() ([]models.Tutor, error)
	GetProfile(tutorID string) (*models.TutorProfile, error)
	GetByUserID(userID string) (*models.Tutor, error)
	UpdateProfile(userID string, field, bio string, hourlyRate float64) (*models.Tutor, error)

	// Availability management (tutor-side CRUD).
	ListAvailability(tutorID string) ([]models.AvailabilityBlock, error)
	AddAvailability(userID string, req models.AvailabilityRequest) (*models.AvailabilityBlock, error)
	RemoveAvailability(userID, blockID string) error

	// Topic attachment.
	AttachTopic(userID, topicID string) (*models.Tutor, error)
	DetachTopic(userID, topicID string) (*models.Tutor, error)
}

// DefaultTutorService is the production implementation.
type DefaultTutorService struct {
	Repo             tutorRepo.TutorRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	TopicRepo        topicRepo.TopicRepository
	ReviewRepo       reviewRepo.ReviewRepository
}

// Search applies free-text and numeric filters in the repository, then the
// availability window filter in memory, then paginates.
func (s *DefaultTutorService) Search(filter models.TutorSearchFilter) (*models.PagedTutors, error) {
	candidates, err := s.Repo.FindWithFilters(filter.Query, filter.MaxRate, filter.MinRating)
	if err != nil {
		return nil, err
	}

	matched := candidates
	if filter.DateFrom != "" || filter.DateTo != "" || filter.TimeFrom > 0 || filter.TimeTo > 0 {
		matched = matched[:0:0]
		for _, t := range candidates {
			ok, err := s.hasAvailabilityInWindow(t.ID, filter)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = append(matched, t)
			}
		}
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	start := page * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := int(math.Ceil(float64(len(matched)) / float64(pageSize)))
	return &models.PagedTutors{
		Items:      matched[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      int64(len(matched)),
		TotalPages: totalPages,
		Last:       page >= totalPages-1,
	}, nil
}

// hasAvailabilityInWindow reports whether a tutor has at least one block
// inside the requested date range overlapping the requested time-of-day
// window. Open-ended bounds default to today / one year out / the whole day.
func (s *DefaultTutorService) hasAvailabilityInWindow(tutorID string, filter models.TutorSearchFilter) (bool, error) {
	blocks, err := s.AvailabilityRepo.ListByTutor(tutorID)
	if err != nil {
		return false, err
	}

	dateFrom := filter.DateFrom
	if dateFrom == "" {
		dateFrom = time.Now().Format("2006-01-02")
	}
	dateTo := filter.DateTo
	if dateTo == "" {
		dateTo = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	}
	timeFrom := filter.TimeFrom
	timeTo := filter.TimeTo
	if timeTo == 0 {
		timeTo = 24 * 60
	}

	for _, b := range blocks {
		if b.Date < dateFrom || b.Date > dateTo {
			continue
		}
		if b.Start < timeTo && b.End > timeFrom {
			return true, nil
		}
	}
	return false, nil
}

// ListAll returns every tutor profile, unfiltered. Admin surface.
func (s *DefaultTutorService) ListAll() ([]models.Tutor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultTutorService) GetProfile(tutorID string) (*models.TutorProfile, error) {
	t, err := s.Repo.GetByID(tutorID)
	if err != nil {
		return nil, NewProfileError("Tutor not found.")
	}

	topics, err := s.TopicRepo.GetByIDs(t.TopicIDs)
	if err != nil {
		return nil, err
	}
	reviews, err := s.ReviewRepo.ListByTutor(tutorID)
	if err != nil {
		return nil, err
	}

	return &models.TutorProfile{
		Tutor:   *t,
		Topics:  topics,
		Reviews: reviews,
	}, nil
}

func (s *DefaultTutorService) GetByUserID(userID string) (*models.Tutor, error) {
	t, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NewProfileError("Tutor profile not found.")
	}
	return t, nil
}

func (s *DefaultTutorService) UpdateProfile(userID string, field, bio string, hourlyRate float64) (*models.Tutor, error) {
	t, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if field != "" {
		t.Field = field
	}
	if bio != "" {
		t.Bio = bio
	}
	if hourlyRate > 0 {
		t.HourlyRate = hourlyRate
	}
	t.UpdatedAt = time.Now()
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultTutorService) ListAvailability(tutorID string) ([]models.AvailabilityBlock, error) {
	return s.AvailabilityRepo.ListByTutor(tutorID)
}

// AddAvailability creates a block for the authenticated tutor. The new block
// must not overlap an existing one on the same date.
func (s *DefaultTutorService) AddAvailability(userID string, req models.AvailabilityRequest) (*models.AvailabilityBlock, error) {
	t, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, NewProfileError("The date must use the YYYY-MM-DD format.")
	}
	start, err := utils.ClockToMinutes(req.Start)
	if err != nil {
		return nil, NewProfileError("The start time is not a valid clock time.")
	}
	end, err := utils.ClockToMinutes(req.End)
	if err != nil {
		return nil, NewProfileError("The end time is not a valid clock time.")
	}
	if end <= start {
		return nil, NewProfileError("The end time must be after the start time.")
	}

	existing, err := s.AvailabilityRepo.ListByTutorAndDate(t.ID, req.Date)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if start < b.End && end > b.Start {
			return nil, NewProfileError("The block overlaps an existing availability block.")
		}
	}

	block := &models.AvailabilityBlock{
		ID:        uuid.New().String(),
		TutorID:   t.ID,
		Date:      req.Date,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}
	if err := s.AvailabilityRepo.Create(block); err != nil {
		return nil, err
	}
	return block, nil
}

func (s *DefaultTutorService) RemoveAvailability(userID, blockID string) error {
	t, err := s.GetByUserID(userID)
	if err != nil {
		return err
	}

	block, err := s.AvailabilityRepo.GetByID(blockID)
	if err != nil {
		return NewProfileError("Availability block not found.")
	}
	if block.TutorID != t.ID {
		return NewProfileError("You do not own this availability block.")
	}
	return s.AvailabilityRepo.Delete(blockID)
}

func (s *DefaultTutorService) AttachTopic(userID, topicID string) (*models.Tutor, error) {
	t, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.TopicRepo.GetByID(topicID); err != nil {
		return nil, NewProfileError("Topic not found.")
	}

	for _, id := range t.TopicIDs {
		if id == topicID {
			return t, nil // already attached
		}
	}
	t.TopicIDs = append(t.TopicIDs, topicID)
	t.UpdatedAt = time.Now()
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultTutorService) DetachTopic(userID, topicID string) (*models.Tutor, error) {
	t, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	kept := t.TopicIDs[:0:0]
	for _, id := range t.TopicIDs {
		if id != topicID {
			kept = append(kept, id)
		}
	}
	t.TopicIDs = kept
	t.UpdatedAt = time.Now()
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}
