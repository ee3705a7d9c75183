package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDaysBetween(t *testing.T) {
	// 2026-08-24 is a Monday.
	monday := date(2026, time.August, 24)

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same working day", monday, monday, 1},
		{"monday to friday", monday, date(2026, time.August, 28), 5},
		// Saturday due date: the walk covers Mon..Sat inclusive and
		// counts only Mon–Fri.
		{"monday to saturday", monday, date(2026, time.August, 29), 5},
		{"monday to sunday", monday, date(2026, time.August, 30), 5},
		{"monday to next monday", monday, date(2026, time.August, 31), 6},
		{"saturday to sunday", date(2026, time.August, 29), date(2026, time.August, 30), 0},
		{"due date in the past", monday, date(2026, time.August, 21), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WorkingDaysBetween(tc.from, tc.to); got != tc.want {
				t.Fatalf("WorkingDaysBetween(%s, %s) = %d, want %d",
					tc.from.Format("2006-01-02"), tc.to.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestWorkingDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2026, time.August, 24, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 25, 0, 1, 0, 0, time.UTC)

	if got := WorkingDaysBetween(from, to); got != 2 {
		t.Fatalf("got %d, want 2 (both calendar dates count)", got)
	}
}
