package timeline

import (
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// PositionOf maps date to a horizontal pixel offset from minDate. Dates
// before minDate produce negative offsets.
func PositionOf(date, minDate time.Time, dayWidth int) int {
	days := domain.DaysBetween(domain.DateOf(minDate), domain.DateOf(date))
	return days * clampDayWidth(dayWidth)
}

// WidthOf maps an inclusive date span to a pixel width. A one-day item spans
// one day unit; an inverted span collapses to one day unit.
func WidthOf(start, end time.Time, dayWidth int) int {
	days := domain.DaysBetween(domain.DateOf(start), domain.DateOf(end)) + 1
	if days < 1 {
		days = 1
	}
	return days * clampDayWidth(dayWidth)
}

func clampDayWidth(dayWidth int) int {
	if dayWidth < 1 {
		return 1
	}
	return dayWidth
}
