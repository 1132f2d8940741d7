package domain

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DateOf truncates t to midnight UTC of its own calendar date. The layout
// domain is date-only, so every date entering the engine passes through here.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of days from a to b, rounded up to the next
// whole day. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(math.Ceil(b.Sub(a).Hours() / 24))
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Days returns the duration of n whole days.
func Days(n int) time.Duration {
	return time.Duration(n) * day
}
