package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// RowDetail summarizes one row on a single line for the interactive view's
// footer: code, title, child count, assignee, end date and progress.
func RowDetail(row timeline.Row, now time.Time) string {
	var parts []string
	if row.StoryCode != "" {
		parts = append(parts, row.StoryCode)
	}
	parts = append(parts, row.Title)
	if row.IsHeader() {
		noun := "issues"
		if row.ChildCount == 1 {
			noun = "issue"
		}
		parts = append(parts, fmt.Sprintf("%d %s", row.ChildCount, noun))
	}
	if row.Issue != nil && row.Issue.Assignee != "" {
		parts = append(parts, "@"+row.Issue.Assignee)
	}
	if row.Bar != nil {
		parts = append(parts, endPhrase(row.Bar, row.Status, domain.DateOf(now)))
		parts = append(parts, strings.TrimSpace(Percent(row.Bar.Progress)))
	}
	return strings.Join(parts, " · ")
}

func endPhrase(bar *timeline.Bar, status domain.Status, today time.Time) string {
	rel := strings.ToLower(RelativeDateFrom(bar.End, today))
	switch {
	case status == domain.StatusDone:
		return "done, ended " + ShortDate(bar.End)
	case bar.End.Before(today):
		return "overdue, ended " + rel
	case bar.DefaultEnd:
		return "ends " + rel + " (default span)"
	default:
		return "ends " + rel
	}
}
