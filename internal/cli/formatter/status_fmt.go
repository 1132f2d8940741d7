package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/repository"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// FormatViewStatus summarizes the stored view state of a scope and its most
// recent load. last may be nil.
func FormatViewStatus(scope string, view timeline.ViewState, last *repository.LoadRecord, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Timeline " + scope))
	b.WriteString("\n")

	collapsed := view.Expanded.Collapsed()
	sort.Strings(collapsed)
	collapsedText := Dim("none")
	if len(collapsed) > 0 {
		collapsedText = StyleYellow.Render(strings.Join(collapsed, ", "))
	}

	rows := [][]string{
		{"Zoom", StyleBlue.Render(string(view.Zoom))},
		{"Collapsed", collapsedText},
	}
	if last != nil {
		kind := "refresh"
		if last.FullReload {
			kind = "full reload"
		}
		rows = append(rows,
			[]string{"Source", last.Source},
			[]string{"Last load", fmt.Sprintf("%s (%s)", HumanTimestampFrom(last.LoadedAt, now), kind)},
			[]string{"Issues", fmt.Sprintf("%d in %d groups", last.IssueCount, last.GroupCount)},
		)
	} else {
		rows = append(rows, []string{"Last load", Dim("never")})
	}

	for _, r := range rows {
		b.WriteString(PadRight(Bold(r[0]), 12))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return b.String()
}
