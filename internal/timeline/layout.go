package timeline

import (
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// Bar is the horizontal extent of one row on the grid.
type Bar struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Offset     int       `json:"pixel_offset"`
	Width      int       `json:"pixel_width"`
	Progress   float64   `json:"progress_fraction"`
	DefaultEnd bool      `json:"default_end,omitempty"`
}

// Options carries the inputs of Build that are not issue data or view state.
type Options struct {
	Now     time.Time
	Presets ZoomPresets
}

// Layout is the complete render model for one timeline frame.
type Layout struct {
	Range       DateRange `json:"range"`
	Zoom        ZoomLevel `json:"zoom"`
	DayWidth    int       `json:"day_width"`
	TotalWidth  int       `json:"total_width"`
	Header      []DayCell `json:"header"`
	Rows        []Row     `json:"rows"`
	TodayMarker *Marker   `json:"today_marker,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Build runs the whole pipeline: range, grouping, flattening, geometry and
// the header grid. issues and view are read, never modified.
func Build(issues []domain.Issue, view ViewState, opts Options) *Layout {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	zoom := view.Zoom
	if !zoom.IsValid() {
		zoom = ZoomWeekly
	}
	dayWidth := opts.Presets.DayWidth(zoom)

	rng := ResolveRange(issues, now)
	rows := Flatten(GroupIssues(issues), view.Expanded)
	for i := range rows {
		if rows[i].Issue != nil {
			rows[i].Bar = BarFor(rows[i].Issue, rng, dayWidth, now)
		}
	}

	layout := &Layout{
		Range:       rng,
		Zoom:        zoom,
		DayWidth:    dayWidth,
		TotalWidth:  rng.Days() * dayWidth,
		Header:      BuildHeader(rng.Min, rng.Max, dayWidth, zoom, now),
		Rows:        rows,
		GeneratedAt: now,
	}
	if offset, ok := TodayMarkerOffset(rng.Min, rng.Max, dayWidth, now); ok {
		layout.TodayMarker = &Marker{Date: domain.DateOf(now), Offset: offset}
	}
	return layout
}

// BarFor computes the bar of issue against rng. It returns nil when the issue
// has no effective start. An end before the start draws as a one-day bar.
func BarFor(issue *domain.Issue, rng DateRange, dayWidth int, now time.Time) *Bar {
	start, ok := issue.EffectiveStart()
	if !ok {
		return nil
	}
	end, _ := issue.EffectiveEnd()
	drawEnd := end
	if drawEnd.Before(start) {
		drawEnd = start
	}

	return &Bar{
		Start:      start,
		End:        drawEnd,
		Offset:     PositionOf(start, rng.Min, dayWidth),
		Width:      WidthOf(start, drawEnd, dayWidth),
		Progress:   Progress(&start, end, issue.Status, now),
		DefaultEnd: issue.EndDate == nil,
	}
}

// RowIndex returns the position of the row with the given identity, or -1.
func (l *Layout) RowIndex(kind RowKind, id string) int {
	for i := range l.Rows {
		if l.Rows[i].Kind == kind && l.Rows[i].ID == id {
			return i
		}
	}
	return -1
}

// Headers returns only the group header rows.
func (l *Layout) Headers() []Row {
	var out []Row
	for _, r := range l.Rows {
		if r.IsHeader() {
			out = append(out, r)
		}
	}
	return out
}
