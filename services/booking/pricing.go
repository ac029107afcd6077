package booking

import (
	"fmt"

	"tutorgo/models"
)

// CalculateSessionPrice computes the total price for a prospective session as
// hourlyRate times whole hours. A missing rate comes through as 0 and is
// tolerated rather than rejected.
func CalculateSessionPrice(hourlyRate float64, durationHours int) float64 {
	return hourlyRate * float64(durationHours)
}

// QuoteSession builds the derived price quote for display. The Display field
// carries the two-decimal presentation; Total keeps the raw product.
func QuoteSession(hourlyRate float64, durationHours int) models.PriceQuote {
	total := CalculateSessionPrice(hourlyRate, durationHours)
	return models.PriceQuote{
		HourlyRate:    hourlyRate,
		DurationHours: durationHours,
		Total:         total,
		Display:       fmt.Sprintf("%.2f", total),
	}
}
