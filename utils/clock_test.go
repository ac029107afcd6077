package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00:00"},
		{540, "09:00:00"},
		{630, "10:30:00"},
		{1439, "23:59:00"},
		{1440, "00:00:00"}, // wraps past midnight
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MinutesToClock(tc.minutes))
	}
}

func TestClockToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:00", 540},
		{"09:00:00", 540},
		{"10:30:15", 630}, // seconds ignored
		{"00:00", 0},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ClockToMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestClockToMinutesRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:30:45:00"} {
		_, err := ClockToMinutes(in)
		assert.Error(t, err, in)
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m += 75 {
		parsed, err := ClockToMinutes(MinutesToClock(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestCombineDateAndMinutes(t *testing.T) {
	at, err := CombineDateAndMinutes("2024-06-10", 600, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), at)

	_, err = CombineDateAndMinutes("10-06-2024", 600, time.UTC)
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.67, Round2(2.0/3.0))
	assert.Equal(t, 60.3, Round2(60.3000001))
	assert.Equal(t, 100.0, Round2(99.999))
}
