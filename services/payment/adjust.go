package payment

import (
	"time"

	"github.com/google/uuid"

	"tutorgo/models"
)

// remainderAfterBooking slices the booked [start, end) span out of an
// enveloping availability block and returns whatever is left: nothing for an
// exact match, one trimmed block for a leading or trailing overlap, or two
// blocks when the session sits strictly inside.
func remainderAfterBooking(block models.AvailabilityBlock, start, end int) []models.AvailabilityBlock {
	var remaining []models.AvailabilityBlock

	if block.Start < start {
		before := block
		before.End = start
		remaining = append(remaining, before)
	}
	if end < block.End {
		after := block
		after.Start = end
		if block.Start < start {
			// Second piece of a split needs its own identity.
			after.ID = uuid.New().String()
			after.CreatedAt = time.Now()
		}
		remaining = append(remaining, after)
	}
	return remaining
}
