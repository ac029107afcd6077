package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorgo/models"
)

func availBlock() models.AvailabilityBlock {
	return models.AvailabilityBlock{
		ID:      "block-1",
		TutorID: "tutor-1",
		Date:    "2024-06-10",
		Start:   540, // 09:00
		End:     780, // 13:00
	}
}

func TestRemainderExactMatchDeletesBlock(t *testing.T) {
	remaining := remainderAfterBooking(availBlock(), 540, 780)

	assert.Empty(t, remaining)
}

func TestRemainderLeadingBookingTrimsFront(t *testing.T) {
	remaining := remainderAfterBooking(availBlock(), 540, 660)

	require.Len(t, remaining, 1)
	assert.Equal(t, "block-1", remaining[0].ID)
	assert.Equal(t, 660, remaining[0].Start)
	assert.Equal(t, 780, remaining[0].End)
}

func TestRemainderTrailingBookingTrimsBack(t *testing.T) {
	remaining := remainderAfterBooking(availBlock(), 660, 780)

	require.Len(t, remaining, 1)
	assert.Equal(t, "block-1", remaining[0].ID)
	assert.Equal(t, 540, remaining[0].Start)
	assert.Equal(t, 660, remaining[0].End)
}

func TestRemainderInsideBookingSplitsBlock(t *testing.T) {
	remaining := remainderAfterBooking(availBlock(), 600, 660)

	require.Len(t, remaining, 2)

	// Leading piece keeps the original identity.
	assert.Equal(t, "block-1", remaining[0].ID)
	assert.Equal(t, 540, remaining[0].Start)
	assert.Equal(t, 600, remaining[0].End)

	// Trailing piece is a new block.
	assert.NotEqual(t, "block-1", remaining[1].ID)
	assert.NotEmpty(t, remaining[1].ID)
	assert.Equal(t, 660, remaining[1].Start)
	assert.Equal(t, 780, remaining[1].End)
	assert.Equal(t, "tutor-1", remaining[1].TutorID)
	assert.Equal(t, "2024-06-10", remaining[1].Date)
}
