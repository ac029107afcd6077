package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorgo/models"
)

func newFlowWithBlock(t *testing.T, start, end int) *BookingFlow {
	t.Helper()
	flow := NewBookingFlow("student-1", "tutor-1", 50)
	require.NoError(t, flow.SelectBlock(block(start, end)))
	return flow
}

func TestNewBookingFlowDefaults(t *testing.T) {
	flow := NewBookingFlow("student-1", "tutor-1", 50)

	assert.Equal(t, StateNoBlock, flow.State)
	assert.Equal(t, SubmitIdle, flow.SubmitStatus)
	assert.Equal(t, -1, flow.StartMinute)
	assert.Equal(t, 1, flow.Duration)
	assert.False(t, flow.CanSubmit())
}

func TestSelectBlockComputesOptions(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)

	assert.Equal(t, StateBlockSelected, flow.State)
	assert.Equal(t, []int{540, 600, 660, 720}, minutes(flow.StartOptions))
}

func TestSelectBlockResetsChoices(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)
	require.NoError(t, flow.ChooseStartTime(600))
	require.NoError(t, flow.SetDuration(3))
	flow.LastError = "stale message"

	require.NoError(t, flow.SelectBlock(block(840, 960)))

	assert.Equal(t, StateBlockSelected, flow.State)
	assert.Equal(t, -1, flow.StartMinute)
	assert.Equal(t, 1, flow.Duration)
	assert.Empty(t, flow.LastError)
	assert.Equal(t, []int{840, 900}, minutes(flow.StartOptions))
}

func TestChooseStartTimeRequiresBlock(t *testing.T) {
	flow := NewBookingFlow("student-1", "tutor-1", 50)

	err := flow.ChooseStartTime(540)

	assert.ErrorIs(t, err, ErrNoBlockSelected)
	assert.Equal(t, StateNoBlock, flow.State)
}

func TestChooseStartTimeRejectsUnofferedMinute(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)

	// 13:00 is the block end, never an offered start.
	err := flow.ChooseStartTime(780)

	assert.ErrorIs(t, err, ErrInvalidStartTime)
	assert.Equal(t, StateBlockSelected, flow.State)
	assert.Equal(t, -1, flow.StartMinute)
}

func TestChooseStartTimeArmsSubmission(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)

	require.NoError(t, flow.ChooseStartTime(600))

	assert.Equal(t, StateReady, flow.State)
	assert.Equal(t, 600, flow.StartMinute)
	assert.True(t, flow.CanSubmit())
}

func TestSetDurationFloorsAtOneHour(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)

	require.NoError(t, flow.SetDuration(0))
	assert.Equal(t, 1, flow.Duration)

	require.NoError(t, flow.SetDuration(-3))
	assert.Equal(t, 1, flow.Duration)
}

func TestSetDurationOnlyChangesPrice(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)
	optionsBefore := minutes(flow.StartOptions)

	require.NoError(t, flow.SetDuration(4))

	assert.Equal(t, optionsBefore, minutes(flow.StartOptions))
	assert.Equal(t, 200.0, flow.Quote().Total)
}

func TestBeginSubmitWithoutStartTimeIsRefused(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)

	err := flow.BeginSubmit()

	assert.ErrorIs(t, err, ErrNoStartTime)
	assert.Equal(t, StateBlockSelected, flow.State)
	assert.Equal(t, SubmitIdle, flow.SubmitStatus)
}

func TestBeginSubmitReentryRefused(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)
	require.NoError(t, flow.ChooseStartTime(540))
	require.NoError(t, flow.BeginSubmit())

	err := flow.BeginSubmit()

	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, StateReserving, flow.State)
}

func TestFailSubmitReturnsToReady(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)
	require.NoError(t, flow.ChooseStartTime(540))
	require.NoError(t, flow.BeginSubmit())

	flow.FailSubmit("The selected time slot is no longer available.")

	assert.Equal(t, StateReady, flow.State)
	assert.Equal(t, SubmitSettled, flow.SubmitStatus)
	assert.Equal(t, "The selected time slot is no longer available.", flow.LastError)
	assert.True(t, flow.CanSubmit())
}

func TestCompleteSubmitIsTerminal(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 780)
	require.NoError(t, flow.ChooseStartTime(540))
	require.NoError(t, flow.BeginSubmit())

	flow.CompleteSubmit("session-9")

	assert.Equal(t, StateReserved, flow.State)
	assert.Equal(t, "session-9", flow.SessionID)
	assert.ErrorIs(t, flow.BeginSubmit(), ErrFlowAlreadyDone)
	assert.ErrorIs(t, flow.SelectBlock(block(540, 780)), ErrFlowAlreadyDone)
	assert.ErrorIs(t, flow.SetDuration(2), ErrFlowAlreadyDone)
}

func TestReservationRequestDerivesEndTime(t *testing.T) {
	flow := NewBookingFlow("student-1", "tutor-1", 50)
	require.NoError(t, flow.SelectBlock(models.AvailabilityBlock{
		ID:      "block-1",
		TutorID: "tutor-1",
		Date:    "2024-06-10",
		Start:   540,
		End:     720,
	}))
	require.NoError(t, flow.ChooseStartTime(600))
	require.NoError(t, flow.SetDuration(2))

	req := flow.ReservationRequest()

	assert.Equal(t, models.ReservationRequest{
		TutorID:   "tutor-1",
		Date:      "2024-06-10",
		StartTime: "10:00:00",
		EndTime:   "12:00:00",
	}, req)
	assert.Equal(t, "100.00", flow.Quote().Display)
}

func TestFitsWithinDay(t *testing.T) {
	// 21:00-24:00 block; starting at 22:00 leaves two hours in the day.
	flow := newFlowWithBlock(t, 1260, 1440)
	require.NoError(t, flow.ChooseStartTime(1320))

	require.NoError(t, flow.SetDuration(2))
	assert.True(t, flow.FitsWithinDay())

	require.NoError(t, flow.SetDuration(3))
	assert.False(t, flow.FitsWithinDay())
	assert.True(t, flow.CanSubmit()) // refusal happens at submit, with a clear message
}

// A duration that runs past the block end is still submittable from the flow's
// point of view; the reservation service owns the envelope rule.
func TestReservationRequestMayOverflowBlock(t *testing.T) {
	flow := newFlowWithBlock(t, 540, 660)
	require.NoError(t, flow.ChooseStartTime(600))
	require.NoError(t, flow.SetDuration(3))

	req := flow.ReservationRequest()

	assert.Equal(t, "13:00:00", req.EndTime)
	assert.True(t, flow.CanSubmit())
}
