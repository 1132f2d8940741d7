package timeline

import (
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// testNow is a Friday morning inside most fixture windows.
var testNow = time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func epic(id, title string) domain.Issue {
	return domain.Issue{ID: id, Title: title, IssueType: domain.TypeEpic, Status: domain.StatusTodo}
}

func child(id, parent string, start, end *time.Time) domain.Issue {
	issue := domain.Issue{
		ID:        id,
		Title:     "Issue " + id,
		IssueType: domain.TypeStory,
		Status:    domain.StatusInProgress,
		StartDate: start,
		EndDate:   end,
	}
	if parent != "" {
		issue.ParentIssueID = ptr(parent)
	}
	return issue
}

func rowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = string(r.Kind) + ":" + r.ID
	}
	return ids
}
