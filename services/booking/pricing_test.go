package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSessionPrice(t *testing.T) {
	cases := []struct {
		name  string
		rate  float64
		hours int
		want  float64
	}{
		{"single hour", 50, 1, 50},
		{"two hours", 50, 2, 100},
		{"fractional rate", 37.5, 2, 75},
		{"zero rate tolerated", 0, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateSessionPrice(tc.rate, tc.hours))
		})
	}
}

func TestCalculateSessionPriceIsPure(t *testing.T) {
	first := CalculateSessionPrice(42.25, 3)
	second := CalculateSessionPrice(42.25, 3)
	assert.Equal(t, first, second)
}

func TestQuoteSessionDisplay(t *testing.T) {
	quote := QuoteSession(50, 2)

	assert.Equal(t, 50.0, quote.HourlyRate)
	assert.Equal(t, 2, quote.DurationHours)
	assert.Equal(t, 100.0, quote.Total)
	assert.Equal(t, "100.00", quote.Display)
}

func TestQuoteSessionFractionalDisplay(t *testing.T) {
	quote := QuoteSession(33.333, 1)
	assert.Equal(t, "33.33", quote.Display)
}
