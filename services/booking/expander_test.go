package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorgo/models"
)

func block(start, end int) models.AvailabilityBlock {
	return models.AvailabilityBlock{
		ID:      "block-1",
		TutorID: "tutor-1",
		Date:    "2024-06-10",
		Start:   start,
		End:     end,
	}
}

func minutes(options []models.StartTimeOption) []int {
	out := make([]int, 0, len(options))
	for _, o := range options {
		out = append(out, o.Minute)
	}
	return out
}

func TestExpandStartTimesFullHours(t *testing.T) {
	// 09:00-13:00 offers starts at 09, 10, 11 and 12 but never 13.
	options := ExpandStartTimes(block(540, 780))

	assert.Equal(t, []int{540, 600, 660, 720}, minutes(options))
	assert.Equal(t, "09:00:00", options[0].Label)
	assert.Equal(t, "12:00:00", options[3].Label)
}

func TestExpandStartTimesPartialTail(t *testing.T) {
	// 09:00-10:30 only fits one full hour, so 10:00 is not offered.
	options := ExpandStartTimes(block(540, 630))

	assert.Equal(t, []int{540}, minutes(options))
}

func TestExpandStartTimesExactHour(t *testing.T) {
	options := ExpandStartTimes(block(540, 600))

	assert.Equal(t, []int{540}, minutes(options))
}

func TestExpandStartTimesDegenerateBlocks(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
	}{
		{"end equals start", 540, 540},
		{"end before start", 600, 540},
		{"shorter than an hour", 540, 599},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			options := ExpandStartTimes(block(tc.start, tc.end))
			assert.NotNil(t, options)
			assert.Empty(t, options)
		})
	}
}

func TestExpandStartTimesAscendingOrder(t *testing.T) {
	options := ExpandStartTimes(block(480, 1020))

	for i := 1; i < len(options); i++ {
		assert.Equal(t, 60, options[i].Minute-options[i-1].Minute)
	}
}
