// Package export writes a computed timeline layout to files: an SVG Gantt
// chart or the render model as JSON.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// SVG geometry, in pixels.
const (
	SidebarWidth = 240
	HeaderHeight = 40
	RowHeight    = 24
	barPadding   = 5
	textInset    = 8
	indentWidth  = 14
	maxTitleLen  = 30
)

var statusFill = map[domain.Status]string{
	domain.StatusBacklog:    "#928374",
	domain.StatusTodo:       "#83a598",
	domain.StatusInProgress: "#fabd2f",
	domain.StatusTesting:    "#d3869b",
	domain.StatusDone:       "#b8bb26",
}

// WriteSVG renders layout as a standalone SVG document.
func WriteSVG(w io.Writer, layout *timeline.Layout) error {
	if layout == nil {
		return fmt.Errorf("write svg: nil layout")
	}
	ew := &errWriter{w: w}
	width := SidebarWidth + layout.TotalWidth
	height := HeaderHeight + len(layout.Rows)*RowHeight

	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("Timeline %s to %s",
		layout.Range.Min.Format("2006-01-02"), layout.Range.Max.Format("2006-01-02")))
	canvas.Rect(0, 0, width, height, "fill:#fbf1c7")

	drawHeader(canvas, layout, height)
	for i, row := range layout.Rows {
		drawRow(canvas, row, HeaderHeight+i*RowHeight, layout.TotalWidth)
	}
	if m := layout.TodayMarker; m != nil {
		x := SidebarWidth + m.Offset
		canvas.Line(x, 0, x, height, "stroke:#fb4934;stroke-width:2")
	}
	canvas.Line(SidebarWidth, 0, SidebarWidth, height, "stroke:#504945")
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func drawHeader(canvas *svg.SVG, layout *timeline.Layout, height int) {
	canvas.Gid("header")
	for _, cell := range layout.Header {
		x := SidebarWidth + cell.Offset
		if cell.IsWeekend {
			canvas.Rect(x, HeaderHeight, cell.Width, height-HeaderHeight, "fill:#ebdbb2")
		}
		if cell.IsToday {
			canvas.Rect(x, 0, cell.Width, HeaderHeight, "fill:#fe8019;fill-opacity:0.3")
		}
		if cell.IsFirstOfMonth {
			canvas.Line(x, 0, x, height, "stroke:#a89984;stroke-dasharray:4,2")
		}
		if cell.Label != "" {
			canvas.Text(x+2, HeaderHeight-14, cell.Label, "font-family:monospace;font-size:11px;fill:#3c3836")
		}
	}
	canvas.Line(0, HeaderHeight, SidebarWidth+layout.TotalWidth, HeaderHeight, "stroke:#504945")
	canvas.Gend()
}

func drawRow(canvas *svg.SVG, row timeline.Row, y, gridWidth int) {
	style := "font-family:sans-serif;font-size:12px;fill:#282828"
	if row.IsHeader() {
		canvas.Rect(0, y, SidebarWidth+gridWidth, RowHeight, "fill:#d5c4a1;fill-opacity:0.5")
		style += ";font-weight:bold"
	}
	canvas.Text(textInset+row.Depth*indentWidth, y+RowHeight-8, rowLabel(row), style)

	if row.Bar == nil {
		return
	}
	bar := row.Bar
	x := SidebarWidth + bar.Offset
	barY := y + barPadding
	barH := RowHeight - 2*barPadding
	fill := statusFill[row.Status]
	if fill == "" {
		fill = statusFill[domain.StatusBacklog]
	}
	canvas.Rect(x, barY, bar.Width, barH, fmt.Sprintf("fill:%s;fill-opacity:0.35;stroke:%s", fill, fill))
	if done := progressWidth(bar.Width, bar.Progress); done > 0 {
		canvas.Rect(x, barY, done, barH, "fill:"+fill)
	}
}

func rowLabel(row timeline.Row) string {
	label := row.Title
	if row.StoryCode != "" {
		label = row.StoryCode + " " + label
	}
	if row.IsHeader() {
		marker := "▾"
		if !row.Expanded {
			marker = "▸"
		}
		label = fmt.Sprintf("%s %s (%d)", marker, label, row.ChildCount)
	}
	return truncate(label, maxTitleLen)
}

func progressWidth(width int, progress float64) int {
	return int(math.Round(float64(width) * math.Max(0, math.Min(1, progress))))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}

// errWriter records the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
