package booking

import (
	"time"

	"github.com/google/uuid"

	"tutorgo/models"
	"tutorgo/utils"
)

// Flow states. A flow walks NoBlock -> BlockSelected -> Ready -> Reserving ->
// Reserved; a failed submission drops it back to Ready with the server message
// kept for display.
const (
	StateNoBlock       = "no_block_selected"
	StateBlockSelected = "block_selected"
	StateReady         = "ready_to_reserve"
	StateReserving     = "reserving"
	StateReserved      = "reserved"
)

// Submission status of the single in-flight reservation attempt.
const (
	SubmitIdle    = "idle"
	SubmitPending = "pending"
	SubmitSettled = "settled"
)

// unsetStart marks "no start time chosen yet".
const unsetStart = -1

// BookingFlow is the server-held state of one student's booking attempt
// against one tutor. It owns no I/O: callers feed it blocks and submission
// outcomes, and it enforces the transition rules.
type BookingFlow struct {
	ID         string  `json:"id"`
	StudentID  string  `json:"studentId"`
	TutorID    string  `json:"tutorId"`
	HourlyRate float64 `json:"hourlyRate"`

	State        string                    `json:"state"`
	SubmitStatus string                    `json:"submitStatus"`
	Block        *models.AvailabilityBlock `json:"block,omitempty"`
	StartOptions []models.StartTimeOption  `json:"startOptions"`
	StartMinute  int                       `json:"startMinute"`
	Duration     int                       `json:"durationHours"`
	LastError    string                    `json:"lastError,omitempty"`
	SessionID    string                    `json:"sessionId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBookingFlow starts a flow with no block selected. A missing hourly rate is
// tolerated as zero.
func NewBookingFlow(studentID string, tutorID string, hourlyRate float64) *BookingFlow {
	now := time.Now()
	return &BookingFlow{
		ID:           uuid.New().String(),
		StudentID:    studentID,
		TutorID:      tutorID,
		HourlyRate:   hourlyRate,
		State:        StateNoBlock,
		SubmitStatus: SubmitIdle,
		StartMinute:  unsetStart,
		Duration:     1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SelectBlock picks (or re-picks) an availability block. Start-time options are
// recomputed from scratch and any previous start time, duration and error are
// reset to their defaults.
func (f *BookingFlow) SelectBlock(block models.AvailabilityBlock) error {
	if f.State == StateReserving {
		return ErrSubmitInFlight
	}
	if f.State == StateReserved {
		return ErrFlowAlreadyDone
	}

	f.Block = &block
	f.StartOptions = ExpandStartTimes(block)
	f.StartMinute = unsetStart
	f.Duration = 1
	f.LastError = ""
	f.State = StateBlockSelected
	f.UpdatedAt = time.Now()
	return nil
}

// ChooseStartTime selects one of the offered start-time options and arms
// submission.
func (f *BookingFlow) ChooseStartTime(minute int) error {
	switch f.State {
	case StateNoBlock:
		return ErrNoBlockSelected
	case StateReserving:
		return ErrSubmitInFlight
	case StateReserved:
		return ErrFlowAlreadyDone
	}

	valid := false
	for _, opt := range f.StartOptions {
		if opt.Minute == minute {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidStartTime
	}

	f.StartMinute = minute
	f.State = StateReady
	f.UpdatedAt = time.Now()
	return nil
}

// SetDuration adjusts the whole-hour session length. Floors at one hour; no
// upper bound is enforced here. Allowed while a block is selected, whether or
// not a start time has been chosen; only the price changes, never the options.
func (f *BookingFlow) SetDuration(hours int) error {
	switch f.State {
	case StateNoBlock:
		return ErrNoBlockSelected
	case StateReserving:
		return ErrSubmitInFlight
	case StateReserved:
		return ErrFlowAlreadyDone
	}

	if hours < 1 {
		hours = 1
	}
	f.Duration = hours
	f.UpdatedAt = time.Now()
	return nil
}

// Quote returns the current derived price.
func (f *BookingFlow) Quote() models.PriceQuote {
	return QuoteSession(f.HourlyRate, f.Duration)
}

// CanSubmit reports whether submission is currently enabled.
func (f *BookingFlow) CanSubmit() bool {
	return f.State == StateReady && f.StartMinute != unsetStart
}

// BeginSubmit moves the flow into the in-flight state. Exactly one submission
// may be pending at a time; calling this without a chosen start time is a
// refusal, not a state change.
func (f *BookingFlow) BeginSubmit() error {
	if f.State == StateReserving {
		return ErrSubmitInFlight
	}
	if f.State == StateReserved {
		return ErrFlowAlreadyDone
	}
	if !f.CanSubmit() {
		return ErrNoStartTime
	}

	f.State = StateReserving
	f.SubmitStatus = SubmitPending
	f.LastError = ""
	f.UpdatedAt = time.Now()
	return nil
}

// CompleteSubmit settles a successful submission and records the created
// session for the checkout handoff. Terminal for this flow.
func (f *BookingFlow) CompleteSubmit(sessionID string) {
	f.SessionID = sessionID
	f.State = StateReserved
	f.SubmitStatus = SubmitSettled
	f.LastError = ""
	f.UpdatedAt = time.Now()
}

// FailSubmit settles a failed submission: the server-provided message is kept
// verbatim for display and the flow returns to a resubmittable state.
func (f *BookingFlow) FailSubmit(message string) {
	f.LastError = message
	f.State = StateReady
	f.SubmitStatus = SubmitSettled
	f.UpdatedAt = time.Now()
}

// FitsWithinDay reports whether the chosen start plus duration stays on the
// block's date. A span that runs past midnight can never sit inside a same-day
// block, and its end time would wrap on the wire.
func (f *BookingFlow) FitsWithinDay() bool {
	return f.StartMinute+f.Duration*60 <= utils.MinutesPerDay
}

// ReservationRequest derives the wire payload for the pending submission. End
// time is the chosen start plus the whole-hour duration; no check is made that
// it stays inside the block (the reservation service owns that rule).
func (f *BookingFlow) ReservationRequest() models.ReservationRequest {
	end := f.StartMinute + f.Duration*60
	return models.ReservationRequest{
		TutorID:   f.TutorID,
		Date:      f.Block.Date,
		StartTime: utils.MinutesToClock(f.StartMinute),
		EndTime:   utils.MinutesToClock(end),
	}
}
