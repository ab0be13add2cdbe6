package venue

import (
	"strconv"
	"strings"
	"time"
)

// DailyHours is one day-bucket's opening window. Both bounds are "HH:MM"
// clock strings; a bucket with either bound empty counts as closed.
type DailyHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OperatingHours holds the three independent day-buckets of a venue.
// Holiday covers Sunday; real public holidays are not distinguished.
type OperatingHours struct {
	Weekday  *DailyHours `json:"weekday,omitempty"`
	Saturday *DailyHours `json:"saturday,omitempty"`
	Holiday  *DailyHours `json:"holiday,omitempty"`
}

// bucketFor selects the day-bucket matching the weekday of t.
func (h OperatingHours) bucketFor(t time.Time) *DailyHours {
	switch t.Weekday() {
	case time.Sunday:
		return h.Holiday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Weekday
	}
}

// IsOpenAt reports whether the venue is open at the given local time.
// A missing bucket or bound means closed. Both window boundaries are
// inclusive, and a window with end before start never matches, so an
// overnight window evaluates as always closed.
func (h OperatingHours) IsOpenAt(now time.Time) bool {
	hours := h.bucketFor(now)
	if hours == nil || hours.Start == "" || hours.End == "" {
		return false
	}

	start, ok := parseClock(hours.Start)
	if !ok {
		return false
	}
	end, ok := parseClock(hours.End)
	if !ok {
		return false
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	return nowMinutes >= start && nowMinutes <= end
}

// IsOpen evaluates the venue's hours against the caller's clock.
func (v *Venue) IsOpen(now time.Time) bool {
	return v.Hours.IsOpenAt(now)
}

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
