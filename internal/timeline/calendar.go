package timeline

import (
	"fmt"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// CalendarDay lists the issues created on one date.
type CalendarDay struct {
	Date   time.Time       `json:"date"`
	Issues []*domain.Issue `json:"-"`
}

// ParseMonth parses a YYYY-MM month key into the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return t.UTC(), nil
}

// MonthKey formats t as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// CalendarMonth buckets issues by the calendar date of CreatedAt for every day
// of the month containing month. Issues without a creation time are skipped.
// Within a day, issues keep input order.
func CalendarMonth(issues []domain.Issue, month time.Time) []CalendarDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	days := make([]CalendarDay, 0, 31)
	index := make(map[time.Time]int)
	for d := first; d.Before(next); d = domain.AddDays(d, 1) {
		index[d] = len(days)
		days = append(days, CalendarDay{Date: d})
	}

	for i := range issues {
		issue := &issues[i]
		if issue.CreatedAt.IsZero() {
			continue
		}
		if idx, ok := index[domain.DateOf(issue.CreatedAt)]; ok {
			days[idx].Issues = append(days[idx].Issues, issue)
		}
	}
	return days
}
