package booking

import (
	"tutorgo/models"
	"tutorgo/utils"
)

// ExpandStartTimes converts one availability block into the ordered sequence of
// hourly start-time options a student may choose from. An option is emitted for
// every start-of-hour step whose one-hour span still fits inside the block, so
// a 09:00-13:00 block yields 09:00 through 12:00 and a 09:00-10:30 block yields
// only 09:00. A degenerate block (end <= start) yields an empty slice.
//
// Pure function of its input; recomputed on every block selection, never cached.
func ExpandStartTimes(block models.AvailabilityBlock) []models.StartTimeOption {
	options := []models.StartTimeOption{}
	for m := block.Start; m+60 <= block.End; m += 60 {
		options = append(options, models.StartTimeOption{
			Minute: m,
			Label:  utils.MinutesToClock(m),
		})
	}
	return options
}
