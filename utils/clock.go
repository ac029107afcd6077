package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (e.g. "2024-06-10").
const DateLayout = "2006-01-02"

// MinutesPerDay bounds clock arithmetic; end times past midnight wrap around.
const MinutesPerDay = 24 * 60

// MinutesToClock renders minutes-from-midnight as an "HH:MM:SS" string.
func MinutesToClock(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d:00", m/60, m%60)
}

// ClockToMinutes parses an "HH:MM" or "HH:MM:SS" string into minutes from
// midnight. Seconds are ignored.
func ClockToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", s)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", s)
	}
	return h*60 + min, nil
}

// ParseDate validates a "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// CombineDateAndMinutes resolves a date string plus minutes-from-midnight into
// an instant in the given location.
func CombineDateAndMinutes(date string, minutes int, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(minutes) * time.Minute), nil
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
