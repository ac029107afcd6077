package review

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorgo/models"
)

type fakeReviewRepo struct {
	reviews []models.Review
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.reviews = append(r.reviews, *review)
	return nil
}
func (r *fakeReviewRepo) ExistsBySession(sessionID string) (bool, error) {
	for _, rv := range r.reviews {
		if rv.SessionID == sessionID {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeReviewRepo) ListByTutor(tutorID string) ([]models.Review, error) {
	out := []models.Review{}
	for _, rv := range r.reviews {
		if rv.TutorID == tutorID {
			out = append(out, rv)
		}
	}
	return out, nil
}
func (r *fakeReviewRepo) AggregateForTutor(tutorID string) (float64, int, error) {
	sum, count := 0, 0
	for _, rv := range r.reviews {
		if rv.TutorID == tutorID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session
}

func (r *fakeSessionRepo) Create(s *models.Session) error { r.sessions[s.ID] = s; return nil }
func (r *fakeSessionRepo) GetByID(id string) (*models.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}
func (r *fakeSessionRepo) Update(s *models.Session) error { r.sessions[s.ID] = s; return nil }
func (r *fakeSessionRepo) ListByStudent(string) ([]models.Session, error) { return nil, nil }
func (r *fakeSessionRepo) ListByTutor(string) ([]models.Session, error)   { return nil, nil }
func (r *fakeSessionRepo) FindOverlappingForTutor(string, string, int, int) ([]models.Session, error) {
	return nil, nil
}
func (r *fakeSessionRepo) FindOverlappingForStudent(string, string, int, int) ([]models.Session, error) {
	return nil, nil
}

type fakeTutorRepo struct {
	tutors map[string]*models.Tutor
}

func (r *fakeTutorRepo) Create(t *models.Tutor) error { r.tutors[t.ID] = t; return nil }
func (r *fakeTutorRepo) GetByID(id string) (*models.Tutor, error) {
	t, ok := r.tutors[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return t, nil
}
func (r *fakeTutorRepo) GetByUserID(string) (*models.Tutor, error) { return nil, nil }
func (r *fakeTutorRepo) Update(t *models.Tutor) error              { r.tutors[t.ID] = t; return nil }
func (r *fakeTutorRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	t, ok := r.tutors[id]
	if !ok {
		return errors.New("not found")
	}
	t.Rating = rating
	t.ReviewCount = reviewCount
	return nil
}
func (r *fakeTutorRepo) GetAll() ([]models.Tutor, error) { return nil, nil }
func (r *fakeTutorRepo) FindWithFilters(string, float64, float64) ([]models.Tutor, error) {
	return nil, nil
}

func newTestService() (*DefaultReviewService, *fakeTutorRepo, *fakeSessionRepo) {
	tutors := &fakeTutorRepo{tutors: map[string]*models.Tutor{
		"tutor-1": {ID: "tutor-1", UserID: "user-t1", Name: "Ada"},
	}}
	sessions := &fakeSessionRepo{sessions: map[string]*models.Session{
		"s-1": {ID: "s-1", StudentID: "student-1", TutorID: "tutor-1", Status: models.SessionConfirmed},
		"s-2": {ID: "s-2", StudentID: "student-1", TutorID: "tutor-1", Status: models.SessionPending},
	}}
	svc := &DefaultReviewService{
		Repo:        &fakeReviewRepo{},
		SessionRepo: sessions,
		TutorRepo:   tutors,
	}
	return svc, tutors, sessions
}

func TestCreateReviewUpdatesTutorAggregate(t *testing.T) {
	svc, tutors, _ := newTestService()

	review, err := svc.CreateReview("student-1", "s-1", models.ReviewRequest{Rating: 4, Comment: "Great session"})

	require.NoError(t, err)
	assert.Equal(t, "tutor-1", review.TutorID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, 4.0, tutors.tutors["tutor-1"].Rating)
	assert.Equal(t, 1, tutors.tutors["tutor-1"].ReviewCount)
}

func TestCreateReviewValidatesRating(t *testing.T) {
	svc, _, _ := newTestService()

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.CreateReview("student-1", "s-1", models.ReviewRequest{Rating: rating})
		var revErr *ReviewError
		require.ErrorAs(t, err, &revErr, "rating %d", rating)
		assert.Equal(t, "The rating must be between 1 and 5.", revErr.Message)
	}
}

func TestCreateReviewRejectsLongComment(t *testing.T) {
	svc, _, _ := newTestService()

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.CreateReview("student-1", "s-1", models.ReviewRequest{Rating: 5, Comment: string(long)})
	assert.Error(t, err)
}

func TestCreateReviewRequiresConfirmedOwnSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateReview("someone-else", "s-1", models.ReviewRequest{Rating: 5})
	assert.Error(t, err)

	_, err = svc.CreateReview("student-1", "s-2", models.ReviewRequest{Rating: 5})
	assert.Error(t, err)

	_, err = svc.CreateReview("student-1", "missing", models.ReviewRequest{Rating: 5})
	assert.Error(t, err)
}

func TestCreateReviewOncePerSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateReview("student-1", "s-1", models.ReviewRequest{Rating: 5})
	require.NoError(t, err)

	_, err = svc.CreateReview("student-1", "s-1", models.ReviewRequest{Rating: 3})
	var revErr *ReviewError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, "This session has already been reviewed.", revErr.Message)
}
