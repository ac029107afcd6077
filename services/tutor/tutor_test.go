package tutor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorgo/models"
)

type fakeTutorRepo struct {
	tutors []models.Tutor
}

func (r *fakeTutorRepo) Create(t *models.Tutor) error {
	r.tutors = append(r.tutors, *t)
	return nil
}
func (r *fakeTutorRepo) GetByID(id string) (*models.Tutor, error) {
	for i := range r.tutors {
		if r.tutors[i].ID == id {
			return &r.tutors[i], nil
		}
	}
	return nil, errors.New("not found")
}
func (r *fakeTutorRepo) GetByUserID(userID string) (*models.Tutor, error) {
	for i := range r.tutors {
		if r.tutors[i].UserID == userID {
			return &r.tutors[i], nil
		}
	}
	return nil, nil
}
func (r *fakeTutorRepo) Update(t *models.Tutor) error {
	for i := range r.tutors {
		if r.tutors[i].ID == t.ID {
			r.tutors[i] = *t
			return nil
		}
	}
	return errors.New("not found")
}
func (r *fakeTutorRepo) UpdateRating(string, float64, int) error { return nil }
func (r *fakeTutorRepo) GetAll() ([]models.Tutor, error)         { return r.tutors, nil }
func (r *fakeTutorRepo) FindWithFilters(query string, maxRate, minRating float64) ([]models.Tutor, error) {
	out := []models.Tutor{}
	for _, t := range r.tutors {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Name), strings.ToLower(query)) &&
			!strings.Contains(strings.ToLower(t.Field), strings.ToLower(query)) {
			continue
		}
		if maxRate > 0 && t.HourlyRate > maxRate {
			continue
		}
		if minRating > 0 && t.Rating < minRating {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type fakeAvailabilityRepo struct {
	blocks []models.AvailabilityBlock
}

func (r *fakeAvailabilityRepo) Create(b *models.AvailabilityBlock) error {
	r.blocks = append(r.blocks, *b)
	return nil
}
func (r *fakeAvailabilityRepo) GetByID(id string) (*models.AvailabilityBlock, error) {
	for i := range r.blocks {
		if r.blocks[i].ID == id {
			return &r.blocks[i], nil
		}
	}
	return nil, errors.New("not found")
}
func (r *fakeAvailabilityRepo) Update(*models.AvailabilityBlock) error { return nil }
func (r *fakeAvailabilityRepo) Delete(id string) error {
	for i := range r.blocks {
		if r.blocks[i].ID == id {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}
func (r *fakeAvailabilityRepo) ListByTutor(tutorID string) ([]models.AvailabilityBlock, error) {
	out := []models.AvailabilityBlock{}
	for _, b := range r.blocks {
		if b.TutorID == tutorID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *fakeAvailabilityRepo) ListByTutorAndDate(tutorID, date string) ([]models.AvailabilityBlock, error) {
	out := []models.AvailabilityBlock{}
	for _, b := range r.blocks {
		if b.TutorID == tutorID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeTopicRepo struct{}

func (fakeTopicRepo) Create(*models.Topic) error { return nil }
func (fakeTopicRepo) GetByID(id string) (*models.Topic, error) {
	if id == "topic-1" {
		return &models.Topic{ID: "topic-1", Name: "Algebra"}, nil
	}
	return nil, errors.New("not found")
}
func (fakeTopicRepo) GetByIDs([]string) ([]models.Topic, error) { return []models.Topic{}, nil }
func (fakeTopicRepo) GetAll() ([]models.Topic, error)           { return nil, nil }
func (fakeTopicRepo) Update(*models.Topic) error                { return nil }
func (fakeTopicRepo) Delete(string) error                       { return nil }

type fakeReviewRepo struct{}

func (fakeReviewRepo) Create(*models.Review) error                  { return nil }
func (fakeReviewRepo) ExistsBySession(string) (bool, error)         { return false, nil }
func (fakeReviewRepo) ListByTutor(string) ([]models.Review, error)  { return []models.Review{}, nil }
func (fakeReviewRepo) AggregateForTutor(string) (float64, int, error) { return 0, 0, nil }

func newTestService() (*DefaultTutorService, *fakeTutorRepo, *fakeAvailabilityRepo) {
	tutors := &fakeTutorRepo{tutors: []models.Tutor{
		{ID: "t-1", UserID: "u-1", Name: "Ada Lovelace", Field: "Mathematics", HourlyRate: 50, Rating: 4.8},
		{ID: "t-2", UserID: "u-2", Name: "Alan Turing", Field: "Computer Science", HourlyRate: 80, Rating: 4.9},
		{ID: "t-3", UserID: "u-3", Name: "Grace Hopper", Field: "Computer Science", HourlyRate: 40, Rating: 4.2},
	}}
	availability := &fakeAvailabilityRepo{blocks: []models.AvailabilityBlock{
		{ID: "b-1", TutorID: "t-1", Date: "2030-06-10", Start: 540, End: 780},
		{ID: "b-2", TutorID: "t-3", Date: "2030-06-12", Start: 840, End: 960},
	}}
	svc := &DefaultTutorService{
		Repo:             tutors,
		AvailabilityRepo: availability,
		TopicRepo:        fakeTopicRepo{},
		ReviewRepo:       fakeReviewRepo{},
	}
	return svc, tutors, availability
}

func TestSearchFreeTextAndRate(t *testing.T) {
	svc, _, _ := newTestService()

	page, err := svc.Search(models.TutorSearchFilter{Query: "computer", MaxRate: 50})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "t-3", page.Items[0].ID)
	assert.Equal(t, int64(1), page.Total)
}

func TestSearchAvailabilityWindow(t *testing.T) {
	svc, _, _ := newTestService()

	// Only t-1 has a morning block in this date range.
	page, err := svc.Search(models.TutorSearchFilter{
		DateFrom: "2030-06-09",
		DateTo:   "2030-06-11",
		TimeFrom: 480,
		TimeTo:   720,
	})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "t-1", page.Items[0].ID)
}

func TestSearchPagination(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.Search(models.TutorSearchFilter{Page: 0, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, first.Items, 2)
	assert.Equal(t, int64(3), first.Total)
	assert.Equal(t, 2, first.TotalPages)
	assert.False(t, first.Last)

	second, err := svc.Search(models.TutorSearchFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, second.Items, 1)
	assert.True(t, second.Last)

	beyond, err := svc.Search(models.TutorSearchFilter{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
}

func TestListAllIsUnfiltered(t *testing.T) {
	svc, tutors, _ := newTestService()

	all, err := svc.ListAll()

	require.NoError(t, err)
	assert.Len(t, all, len(tutors.tutors))
}

func TestAddAvailabilityValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddAvailability("u-1", models.AvailabilityRequest{Date: "bad", Start: "09:00", End: "10:00"})
	assert.Error(t, err)

	_, err = svc.AddAvailability("u-1", models.AvailabilityRequest{Date: "2030-07-01", Start: "10:00", End: "09:00"})
	assert.Error(t, err)

	block, err := svc.AddAvailability("u-1", models.AvailabilityRequest{Date: "2030-07-01", Start: "09:00", End: "12:00"})
	require.NoError(t, err)
	assert.Equal(t, 540, block.Start)
	assert.Equal(t, 720, block.End)

	// Overlapping block on the same date is rejected.
	_, err = svc.AddAvailability("u-1", models.AvailabilityRequest{Date: "2030-07-01", Start: "11:00", End: "13:00"})
	assert.Error(t, err)
}

func TestRemoveAvailabilityOwnership(t *testing.T) {
	svc, _, availability := newTestService()

	// b-2 belongs to t-3 (user u-3), not u-1.
	assert.Error(t, svc.RemoveAvailability("u-1", "b-2"))

	require.NoError(t, svc.RemoveAvailability("u-1", "b-1"))
	assert.Len(t, availability.blocks, 1)
}

func TestAttachAndDetachTopic(t *testing.T) {
	svc, tutors, _ := newTestService()

	_, err := svc.AttachTopic("u-1", "missing-topic")
	assert.Error(t, err)

	updated, err := svc.AttachTopic("u-1", "topic-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"topic-1"}, updated.TopicIDs)

	// Attaching again is a no-op.
	updated, err = svc.AttachTopic("u-1", "topic-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"topic-1"}, updated.TopicIDs)

	updated, err = svc.DetachTopic("u-1", "topic-1")
	require.NoError(t, err)
	assert.Empty(t, updated.TopicIDs)
	assert.Empty(t, tutors.tutors[0].TopicIDs)
}
