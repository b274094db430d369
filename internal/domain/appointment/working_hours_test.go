package appointment

import (
	"testing"
	"time"

	"github.com/clipperbook/booking-api/internal/models"
)

// 2026-01-05 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func TestISOWeekday(t *testing.T) {
	if got := ISOWeekday(monday(9, 0)); got != 1 {
		t.Fatalf("monday = %d, want 1", got)
	}

	sunday := time.Date(2026, 1, 4, 9, 0, 0, 0, time.UTC)
	if got := ISOWeekday(sunday); got != 7 {
		t.Fatalf("sunday = %d, want 7", got)
	}

	saturday := time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC)
	if got := ISOWeekday(saturday); got != 6 {
		t.Fatalf("saturday = %d, want 6", got)
	}
}

func window(weekday int, start, end string) models.WorkingHours {
	return models.WorkingHours{
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
}

func TestWithinAnyWindow(t *testing.T) {
	tests := []struct {
		name    string
		windows []models.WorkingHours
		start   time.Time
		end     time.Time
		want    bool
	}{
		{
			name:    "contained",
			windows: []models.WorkingHours{window(1, "09:00", "17:00")},
			start:   monday(9, 0),
			end:     monday(10, 0),
			want:    true,
		},
		{
			name:    "exact window bounds",
			windows: []models.WorkingHours{window(1, "09:00", "17:00")},
			start:   monday(9, 0),
			end:     monday(17, 0),
			want:    true,
		},
		{
			name:    "before opening",
			windows: []models.WorkingHours{window(1, "09:00", "17:00")},
			start:   monday(8, 0),
			end:     monday(9, 0),
			want:    false,
		},
		{
			name:    "runs past closing",
			windows: []models.WorkingHours{window(1, "09:00", "17:00")},
			start:   monday(16, 30),
			end:     monday(17, 30),
			want:    false,
		},
		{
			name:    "no windows",
			windows: nil,
			start:   monday(9, 0),
			end:     monday(10, 0),
			want:    false,
		},
		{
			name: "split day, gap between windows",
			windows: []models.WorkingHours{
				window(1, "09:00", "12:00"),
				window(1, "13:00", "17:00"),
			},
			start: monday(12, 0),
			end:   monday(13, 0),
			want:  false,
		},
		{
			name: "split day, afternoon window",
			windows: []models.WorkingHours{
				window(1, "09:00", "12:00"),
				window(1, "13:00", "17:00"),
			},
			start: monday(13, 0),
			end:   monday(14, 0),
			want:  true,
		},
		{
			name: "inactive window does not qualify",
			windows: []models.WorkingHours{
				{Weekday: 1, StartTime: "09:00", EndTime: "17:00", Active: false},
			},
			start: monday(9, 0),
			end:   monday(10, 0),
			want:  false,
		},
		{
			name: "blank times do not qualify",
			windows: []models.WorkingHours{
				{Weekday: 1, Active: true},
			},
			start: monday(9, 0),
			end:   monday(10, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinAnyWindow(tt.windows, tt.start, tt.end); got != tt.want {
				t.Fatalf("WithinAnyWindow = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	// half-open: touching endpoints are not a conflict
	if Overlaps(monday(9, 0), monday(10, 0), monday(10, 0), monday(11, 0)) {
		t.Fatal("back-to-back ranges must not overlap")
	}
	if Overlaps(monday(10, 0), monday(11, 0), monday(9, 0), monday(10, 0)) {
		t.Fatal("back-to-back ranges must not overlap (reversed)")
	}

	if !Overlaps(monday(9, 30), monday(10, 30), monday(9, 0), monday(10, 0)) {
		t.Fatal("partially overlapping ranges must overlap")
	}
	if !Overlaps(monday(9, 0), monday(12, 0), monday(10, 0), monday(11, 0)) {
		t.Fatal("contained range must overlap")
	}
}
