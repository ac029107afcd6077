package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorgo/config"
)

func TestSessionAmount(t *testing.T) {
	config.AppConfig.PlatformCommissionRate = 0.10

	cases := []struct {
		name           string
		rate           float64
		minutes        int
		wantAmount     float64
		wantCommission float64
	}{
		{"one hour at 60", 60, 60, 60, 6},
		{"two hours at 50", 50, 120, 99.6, 9.96}, // per-minute 0.83, not 50/60 exact
		{"ninety minutes at 40", 40, 90, 60.3, 6.03}, // per-minute 0.67 after rounding
		{"zero rate", 0, 60, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, commission := sessionAmount(tc.rate, tc.minutes)
			assert.InDelta(t, tc.wantAmount, amount, 0.001)
			assert.InDelta(t, tc.wantCommission, commission, 0.001)
		})
	}
}
