package domain

import "time"

// DateOnly strips the time-of-day portion, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WorkingDaysBetween counts the Monday–Friday dates in the inclusive
// range [from, to]. Weekends are skipped; public holidays are not
// considered. Returns 0 when to precedes from.
func WorkingDaysBetween(from, to time.Time) int {
	from = DateOnly(from)
	to = DateOnly(to)
	if to.Before(from) {
		return 0
	}

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}
