package formatter

import (
	"fmt"
	"strings"

	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// Sidebar column widths, in cells.
const (
	statusColWidth = 11
	dateColWidth   = 7
	pctColWidth    = 4
	cursorWidth    = 2

	DefaultTitleWidth = 28
	minTitleWidth     = 8
)

const todayRune = "│"

// GanttOptions controls which part of a layout is drawn.
type GanttOptions struct {
	TitleWidth int
	GridOffset int // first grid cell shown
	GridWidth  int // visible grid cells; 0 shows the whole grid
	RowOffset  int
	RowLimit   int // 0 shows every row from RowOffset
	Cursor     int // highlighted row index, -1 for none
	Legend     bool
}

func DefaultGanttOptions() GanttOptions {
	return GanttOptions{TitleWidth: DefaultTitleWidth, Cursor: -1, Legend: true}
}

// SidebarWidth returns the width of everything left of the grid.
func SidebarWidth(titleWidth int) int {
	titleWidth = max(titleWidth, minTitleWidth)
	return cursorWidth + titleWidth + 1 + statusColWidth + 1 + dateColWidth + 1 + dateColWidth + 1 + pctColWidth + 1
}

// GridWindow returns the grid offset for a window of width cells that puts
// today a third of the way in, clamped to the grid.
func GridWindow(layout *timeline.Layout, width int) int {
	if layout == nil || width <= 0 || layout.TotalWidth <= width {
		return 0
	}
	offset := 0
	if layout.TodayMarker != nil {
		offset = layout.TodayMarker.Offset - width/3
	}
	return max(0, min(offset, layout.TotalWidth-width))
}

// FormatGantt renders layout as a terminal Gantt chart: a sidebar with
// title, status, start, end and progress columns followed by the grid.
func FormatGantt(layout *timeline.Layout, opts GanttOptions) string {
	if layout == nil {
		return ""
	}
	opts.TitleWidth = max(opts.TitleWidth, minTitleWidth)
	lo, hi := window(layout.TotalWidth, opts.GridOffset, opts.GridWidth)

	var b strings.Builder
	monthLine, dayLine := headerLines(layout)

	b.WriteString(sidebarHeader(opts.TitleWidth))
	b.WriteString(StyleHeader.Render(string(monthLine[lo:hi])))
	b.WriteString("\n")
	if layout.Zoom == timeline.ZoomWeekly {
		b.WriteString(strings.Repeat(" ", SidebarWidth(opts.TitleWidth)))
		b.WriteString(StyleDim.Render(string(dayLine[lo:hi])))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(strings.Repeat("─", SidebarWidth(opts.TitleWidth)+hi-lo)))
	b.WriteString("\n")

	if len(layout.Rows) == 0 {
		b.WriteString(Dim("  No issues to display."))
		b.WriteString("\n")
	}

	first, last := window(len(layout.Rows), opts.RowOffset, opts.RowLimit)
	for i := first; i < last; i++ {
		row := layout.Rows[i]
		b.WriteString(sidebarCells(row, opts.TitleWidth, i == opts.Cursor))
		b.WriteString(gridLine(layout, row, lo, hi))
		b.WriteString("\n")
	}

	if opts.Legend {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("%s to %s · %s · %d days",
			layout.Range.Min.Format("2006-01-02"), layout.Range.Max.Format("2006-01-02"),
			layout.Zoom, layout.Range.Days())))
		b.WriteString("\n")
		b.WriteString(Dim(filledBlock + " elapsed  " + emptyBlock + " remaining  " + todayRune + " today  ~ default end"))
		b.WriteString("\n")
	}
	return b.String()
}

// window clamps [offset, offset+size) to [0, total). size 0 means the rest.
func window(total, offset, size int) (int, int) {
	lo := max(0, min(offset, total))
	if size <= 0 {
		return lo, total
	}
	return lo, min(total, lo+size)
}

// headerLines builds the month line and the day-number line over the whole
// grid. A month label is cut short when the next one starts.
func headerLines(layout *timeline.Layout) ([]rune, []rune) {
	months := blankRunes(layout.TotalWidth)
	days := blankRunes(layout.TotalWidth)

	type label struct {
		offset int
		text   string
	}
	var labels []label
	for i, cell := range layout.Header {
		if i == 0 || cell.IsFirstOfMonth {
			labels = append(labels, label{cell.Offset, cell.Date.Format("Jan 2006")})
		}
		if layout.Zoom == timeline.ZoomWeekly && len(cell.Label) <= cell.Width {
			placeRunes(days, cell.Offset, cell.Label)
		}
	}
	for i, l := range labels {
		room := layout.TotalWidth - l.offset
		if i+1 < len(labels) {
			room = labels[i+1].offset - l.offset - 1
		}
		if room >= 3 {
			placeRunes(months, l.offset, Truncate(l.text, room))
		}
	}
	return months, days
}

func sidebarHeader(titleWidth int) string {
	cols := []string{
		strings.Repeat(" ", cursorWidth) + PadRight("TITLE", titleWidth),
		PadRight("STATUS", statusColWidth),
		PadRight("START", dateColWidth),
		PadRight("END", dateColWidth),
		PadRight("%", pctColWidth),
	}
	return StyleHeader.Render(strings.Join(cols, " ")) + " "
}

func sidebarCells(row timeline.Row, titleWidth int, selected bool) string {
	prefix := strings.Repeat("  ", row.Depth)
	label := row.Title
	if row.StoryCode != "" {
		label = row.StoryCode + " " + label
	}
	if row.IsHeader() {
		marker := "▾"
		if !row.Expanded {
			marker = "▸"
		}
		prefix += marker + " "
		label = fmt.Sprintf("%s (%d)", label, row.ChildCount)
	} else {
		prefix += TypeIcon(row.IssueType) + " "
	}
	title := PadRight(Truncate(prefix+label, titleWidth), titleWidth)

	cursor := "  "
	switch {
	case selected:
		cursor = "› "
		title = StyleCursor.Render(title)
	case row.IsHeader():
		title = StyleBold.Render(title)
	}

	var start, end, pct string
	if bar := row.Bar; bar != nil {
		start = ShortDate(bar.Start)
		end = ShortDate(bar.End)
		if bar.DefaultEnd {
			end = "~" + end
		}
		pct = Percent(bar.Progress)
	}

	cols := []string{
		cursor + title,
		StatusStyle(row.Status).Render(PadRight(StatusLabel(row.Status), statusColWidth)),
		PadRight(start, dateColWidth),
		PadRight(end, dateColWidth),
		PadRight(pct, pctColWidth),
	}
	return strings.Join(cols, " ") + " "
}

type cellKind int

const (
	cellBlank cellKind = iota
	cellDone
	cellRemaining
	cellToday
)

// gridLine draws one row's bar over grid cells [lo, hi). The today marker is
// drawn only where no bar covers it.
func gridLine(layout *timeline.Layout, row timeline.Row, lo, hi int) string {
	kinds := make([]cellKind, layout.TotalWidth)
	if bar := row.Bar; bar != nil {
		done := filledCells(bar.Progress, bar.Width)
		for i := 0; i < bar.Width; i++ {
			pos := bar.Offset + i
			if pos < 0 || pos >= len(kinds) {
				continue
			}
			if i < done {
				kinds[pos] = cellDone
			} else {
				kinds[pos] = cellRemaining
			}
		}
	}
	if m := layout.TodayMarker; m != nil && m.Offset >= 0 && m.Offset < len(kinds) && kinds[m.Offset] == cellBlank {
		kinds[m.Offset] = cellToday
	}

	style := StatusStyle(row.Status)
	if row.IsHeader() {
		style = style.Bold(true)
	}
	var b strings.Builder
	for i := lo; i < hi; {
		j := i
		for j < hi && kinds[j] == kinds[i] {
			j++
		}
		n := j - i
		switch kinds[i] {
		case cellDone:
			b.WriteString(style.Render(strings.Repeat(filledBlock, n)))
		case cellRemaining:
			b.WriteString(style.Render(strings.Repeat(emptyBlock, n)))
		case cellToday:
			b.WriteString(StyleToday.Render(strings.Repeat(todayRune, n)))
		default:
			b.WriteString(strings.Repeat(" ", n))
		}
		i = j
	}
	return b.String()
}

func blankRunes(n int) []rune {
	r := make([]rune, n)
	for i := range r {
		r[i] = ' '
	}
	return r
}

func placeRunes(dst []rune, offset int, s string) {
	for i, r := range []rune(s) {
		if offset+i < 0 || offset+i >= len(dst) {
			return
		}
		dst[offset+i] = r
	}
}
