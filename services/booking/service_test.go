package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorgo/models"
)

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
func (r *fakeTutorRepo) GetByUserID(userID string) (*models.Tutor, error) {
	for _, t := range r.tutors {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTutorRepo) Update(t *models.Tutor) error { r.tutors[t.ID] = t; return nil }
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
func (r *fakeTutorRepo) FindWithFilters(query string, maxRate, minRating float64) ([]models.Tutor, error) {
	return nil, nil
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
func (r *fakeAvailabilityRepo) Update(b *models.AvailabilityBlock) error {
	for i := range r.blocks {
		if r.blocks[i].ID == b.ID {
			r.blocks[i] = *b
			return nil
		}
	}
	return errors.New("not found")
}
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
func (r *fakeSessionRepo) ListByStudent(studentID string) ([]models.Session, error) {
	out := []models.Session{}
	for _, s := range r.sessions {
		if s.StudentID == studentID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *fakeSessionRepo) ListByTutor(tutorID string) ([]models.Session, error) {
	out := []models.Session{}
	for _, s := range r.sessions {
		if s.TutorID == tutorID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *fakeSessionRepo) FindOverlappingForTutor(tutorID, date string, start, end int) ([]models.Session, error) {
	out := []models.Session{}
	for _, s := range r.sessions {
		if s.TutorID == tutorID && s.Date == date && s.Status != models.SessionCancelled &&
			s.Start < end && s.End > start {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *fakeSessionRepo) FindOverlappingForStudent(studentID, date string, start, end int) ([]models.Session, error) {
	out := []models.Session{}
	for _, s := range r.sessions {
		if s.StudentID == studentID && s.Date == date && s.Status != models.SessionCancelled &&
			s.Start < end && s.End > start {
			out = append(out, *s)
		}
	}
	return out, nil
}

func newTestService() (*DefaultBookingService, *fakeSessionRepo, *fakeAvailabilityRepo) {
	sessions := &fakeSessionRepo{sessions: map[string]*models.Session{}}
	availability := &fakeAvailabilityRepo{blocks: []models.AvailabilityBlock{
		{ID: "block-1", TutorID: "tutor-1", Date: "2024-06-10", Start: 540, End: 780},
	}}
	tutors := &fakeTutorRepo{tutors: map[string]*models.Tutor{
		"tutor-1": {ID: "tutor-1", UserID: "user-t1", Name: "Ada", HourlyRate: 50},
	}}
	svc := &DefaultBookingService{
		SessionRepo:      sessions,
		AvailabilityRepo: availability,
		TutorRepo:        tutors,
	}
	return svc, sessions, availability
}

func reserveReq(start, end string) models.ReservationRequest {
	return models.ReservationRequest{
		TutorID:   "tutor-1",
		Date:      "2024-06-10",
		StartTime: start,
		EndTime:   end,
	}
}

func TestReserveCreatesPendingSession(t *testing.T) {
	svc, sessions, _ := newTestService()

	session, err := svc.Reserve("student-1", reserveReq("10:00:00", "12:00:00"))

	require.NoError(t, err)
	assert.Equal(t, models.SessionPending, session.Status)
	assert.Equal(t, 600, session.Start)
	assert.Equal(t, 720, session.End)
	assert.Equal(t, "Ada", session.TutorName)
	assert.Len(t, sessions.sessions, 1)
}

func TestReserveRejectsEndBeforeStart(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Reserve("student-1", reserveReq("12:00:00", "10:00:00"))

	var resErr *ReservationError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "End time must be after the start time.", resErr.Message)
}

func TestReserveRejectsSpanOutsideBlocks(t *testing.T) {
	svc, _, _ := newTestService()

	// 12:00-14:00 runs past the 13:00 block end.
	_, err := svc.Reserve("student-1", reserveReq("12:00:00", "14:00:00"))

	var resErr *ReservationError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "The tutor is not available at the selected date and time.", resErr.Message)
}

func TestReserveRejectsTutorOverlap(t *testing.T) {
	svc, sessions, _ := newTestService()
	sessions.sessions["s-1"] = &models.Session{
		ID: "s-1", StudentID: "other", TutorID: "tutor-1",
		Date: "2024-06-10", Start: 600, End: 660, Status: models.SessionPending,
	}

	_, err := svc.Reserve("student-1", reserveReq("10:00:00", "12:00:00"))

	var resErr *ReservationError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "The selected time slot is no longer available.", resErr.Message)
}

func TestReserveIgnoresCancelledSessions(t *testing.T) {
	svc, sessions, _ := newTestService()
	sessions.sessions["s-1"] = &models.Session{
		ID: "s-1", StudentID: "other", TutorID: "tutor-1",
		Date: "2024-06-10", Start: 600, End: 660, Status: models.SessionCancelled,
	}

	_, err := svc.Reserve("student-1", reserveReq("10:00:00", "12:00:00"))

	assert.NoError(t, err)
}

func TestReserveRejectsStudentOverlap(t *testing.T) {
	svc, sessions, _ := newTestService()
	sessions.sessions["s-1"] = &models.Session{
		ID: "s-1", StudentID: "student-1", TutorID: "tutor-2",
		Date: "2024-06-10", Start: 630, End: 690, Status: models.SessionConfirmed,
	}

	_, err := svc.Reserve("student-1", reserveReq("10:00:00", "12:00:00"))

	var resErr *ReservationError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "You already have a session that overlaps this time.", resErr.Message)
}

func TestCancelSessionOwnershipAndState(t *testing.T) {
	svc, sessions, _ := newTestService()
	sessions.sessions["s-1"] = &models.Session{
		ID: "s-1", StudentID: "student-1", TutorID: "tutor-1",
		Date: "2024-06-10", Start: 600, End: 660, Status: models.SessionPending,
	}

	assert.Error(t, svc.CancelSession("someone-else", "s-1"))

	require.NoError(t, svc.CancelSession("student-1", "s-1"))
	assert.Equal(t, models.SessionCancelled, sessions.sessions["s-1"].Status)

	// Already cancelled, not pending any more.
	assert.Error(t, svc.CancelSession("student-1", "s-1"))
}
