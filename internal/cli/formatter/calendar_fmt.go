package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

const calendarTitleWidth = 48

// FormatCalendar renders a month grid with per-day issue counts followed by
// a table of the days that have issues.
func FormatCalendar(month time.Time, days []timeline.CalendarDay) string {
	var b strings.Builder
	b.WriteString(Header(month.Format("January 2006")))
	b.WriteString("\n\n")
	b.WriteString(monthGrid(days))
	b.WriteString("\n")

	var rows [][]string
	total := 0
	for _, day := range days {
		if len(day.Issues) == 0 {
			continue
		}
		total += len(day.Issues)
		titles := make([]string, 0, len(day.Issues))
		for _, issue := range day.Issues {
			label := issue.Title
			if issue.StoryCode != "" {
				label = issue.StoryCode + " " + label
			}
			titles = append(titles, label)
		}
		rows = append(rows, []string{
			day.Date.Format("Mon Jan 02"),
			fmt.Sprintf("%d", len(day.Issues)),
			Truncate(strings.Join(titles, ", "), calendarTitleWidth),
		})
	}

	if len(rows) == 0 {
		b.WriteString(Dim("No issues created this month."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTable([]string{"DATE", "ISSUES", "TITLES"}, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d issues across %d days", total, len(rows))))
	b.WriteString("\n")
	return b.String()
}

// monthGrid lays the month out Monday-first. Days with issues show their
// count instead of a dot.
func monthGrid(days []timeline.CalendarDay) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	if len(days) == 0 {
		return b.String()
	}
	lead := (int(days[0].Date.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", lead))
	col := lead
	for _, day := range days {
		cell := fmt.Sprintf("%3d", day.Date.Day())
		switch {
		case len(day.Issues) > 0:
			cell = StyleGreen.Render(fmt.Sprintf("%2d", day.Date.Day())) + StyleYellow.Render(countMark(len(day.Issues)))
		default:
			cell = StyleDim.Render(cell)
		}
		b.WriteString(" " + cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func countMark(n int) string {
	if n > 9 {
		return "+"
	}
	return fmt.Sprintf("%d", n)
}
