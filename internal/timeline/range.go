package timeline

import (
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

const (
	// RangeLookbackDays pads the window before the earliest start.
	RangeLookbackDays = 7
	// RangeLookaheadDays pads the window after the latest end.
	RangeLookaheadDays = 14
	// EmptyRangeDays is the window length used when no issue has a date.
	EmptyRangeDays = 30
)

// DateRange is the visible calendar window. Both bounds are midnight UTC and
// Max is inclusive.
type DateRange struct {
	Min time.Time `json:"min_date"`
	Max time.Time `json:"max_date"`
}

// Days returns the number of day cells in the window, counting both ends.
func (r DateRange) Days() int {
	return domain.DaysBetween(r.Min, r.Max) + 1
}

// Contains reports whether the date of t lies inside the window.
func (r DateRange) Contains(t time.Time) bool {
	d := domain.DateOf(t)
	return !d.Before(r.Min) && !d.After(r.Max)
}

// ResolveRange computes the visible window for issues.
//
// Starts are startDate ?? createdAt. Ends are endDate verbatim, or today when
// an issue has no end date, so an undated issue alone never pushes the window
// past today. Starts also count toward the upper bound: an issue starting in
// the future with the default span still ends inside the window.
func ResolveRange(issues []domain.Issue, now time.Time) DateRange {
	today := domain.DateOf(now)

	var lo, hi time.Time
	found := false
	observe := func(t time.Time, bound *time.Time, less bool) {
		if bound.IsZero() || (less && t.Before(*bound)) || (!less && t.After(*bound)) {
			*bound = t
		}
	}

	for i := range issues {
		issue := &issues[i]
		if issue.StartDate == nil && issue.EndDate == nil && issue.CreatedAt.IsZero() {
			continue
		}
		found = true

		end := domain.DateOf(domain.TimeFromPtrWithDefault(today, issue.EndDate))

		if start, ok := issue.EffectiveStart(); ok {
			observe(start, &lo, true)
			observe(start, &hi, false)
		} else {
			// Only an end date: it anchors the lower bound too.
			observe(end, &lo, true)
		}
		observe(end, &hi, false)
	}

	if !found {
		return DateRange{Min: today, Max: domain.AddDays(today, EmptyRangeDays)}
	}

	return DateRange{
		Min: domain.AddDays(lo, -RangeLookbackDays),
		Max: domain.AddDays(hi, RangeLookaheadDays),
	}
}
