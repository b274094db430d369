package appointment

import (
	"time"

	"github.com/clipperbook/booking-api/internal/models"
)

// ISOWeekday maps time.Weekday (Sunday=0) to ISO numbering (Monday=1,
// Sunday=7), matching the stored WorkingHours.Weekday values.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WithinAnyWindow reports whether [start, end] falls fully inside at least
// one active window. Containment is checked against the weekday of start;
// appointments are assumed not to cross midnight.
func WithinAnyWindow(
	windows []models.WorkingHours,
	start time.Time,
	end time.Time,
) bool {
	loc := start.Location()

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	for _, w := range windows {
		if !w.Active || w.StartTime == "" || w.EndTime == "" {
			continue
		}

		windowStart, ok := parseHM(w.StartTime)
		if !ok {
			continue
		}
		windowEnd, ok := parseHM(w.EndTime)
		if !ok {
			continue
		}

		if !start.Before(windowStart) && !end.After(windowEnd) {
			return true
		}
	}

	return false
}

// Overlaps is the half-open interval rule: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 and s2 < e1. Back-to-back appointments do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
