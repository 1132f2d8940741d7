package timeline

import (
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// DayCell describes one column of the calendar header.
type DayCell struct {
	Date           time.Time `json:"date"`
	Offset         int       `json:"offset"`
	Width          int       `json:"width"`
	Label          string    `json:"label,omitempty"`
	IsFirstOfMonth bool      `json:"is_first_of_month"`
	IsToday        bool      `json:"is_today"`
	IsWeekend      bool      `json:"is_weekend"`
}

// Marker is the today indicator.
type Marker struct {
	Date   time.Time `json:"date"`
	Offset int       `json:"offset"`
}

// BuildHeader returns one cell per day in [minDate, maxDate]. Weekly zoom
// labels every cell with its day of month; monthly zoom labels the first cell
// and each first-of-month with the month name.
func BuildHeader(minDate, maxDate time.Time, dayWidth int, zoom ZoomLevel, now time.Time) []DayCell {
	lo, hi := domain.DateOf(minDate), domain.DateOf(maxDate)
	if hi.Before(lo) {
		return nil
	}
	width := clampDayWidth(dayWidth)
	today := domain.DateOf(now)

	cells := make([]DayCell, 0, domain.DaysBetween(lo, hi)+1)
	for d, i := lo, 0; !d.After(hi); d, i = domain.AddDays(d, 1), i+1 {
		cell := DayCell{
			Date:           d,
			Offset:         i * width,
			Width:          width,
			IsFirstOfMonth: d.Day() == 1,
			IsToday:        d.Equal(today),
			IsWeekend:      d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
		}
		switch zoom {
		case ZoomMonthly:
			if i == 0 || cell.IsFirstOfMonth {
				cell.Label = d.Format("Jan 2006")
			}
		default:
			cell.Label = d.Format("2")
		}
		cells = append(cells, cell)
	}
	return cells
}

// TodayMarkerOffset returns the pixel offset of today's cell and true when
// today falls inside [minDate, maxDate]. Outside the window it returns false;
// the marker is never clamped to an edge.
func TodayMarkerOffset(minDate, maxDate time.Time, dayWidth int, now time.Time) (int, bool) {
	today := domain.DateOf(now)
	if today.Before(domain.DateOf(minDate)) || today.After(domain.DateOf(maxDate)) {
		return 0, false
	}
	return PositionOf(today, minDate, dayWidth), true
}
