package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// Convert maps import records onto domain issues. It is tolerant: a record
// without an id (or with the reserved id) is skipped, an unknown type or
// status falls back to story or backlog, and an unparsable date is dropped as
// if it were absent. Each such repair is reported in the returned slice; the
// batch as a whole never fails.
func Convert(records []IssueImport) ([]domain.Issue, []error) {
	issues := make([]domain.Issue, 0, len(records))
	var warnings []error

	for i := range records {
		rec := &records[i]
		id := strings.TrimSpace(rec.ID.String())
		if id == "" || id == ReservedIssueID {
			warnings = append(warnings, fmt.Errorf("issues[%d]: skipped record with id %q", i, id))
			continue
		}
		warn := func(format string, args ...any) {
			warnings = append(warnings, fmt.Errorf("issue %s: "+format, append([]any{id}, args...)...))
		}

		issue := domain.Issue{
			ID:        id,
			Title:     domain.CoalesceStr(strings.TrimSpace(rec.Title), rec.StoryCode),
			StoryCode: rec.StoryCode,
			Assignee:  rec.Assignee,
			ProjectID: rec.ProjectID.String(),
			Sprint:    rec.SprintNumber.String(),
		}

		issue.IssueType = domain.TypeStory
		if rec.IssueType != "" {
			if t, ok := parseIssueType(rec.IssueType); ok {
				issue.IssueType = t
			} else {
				warn("unknown issue_type %q, using %s", rec.IssueType, domain.TypeStory)
			}
		}

		issue.Status = domain.StatusBacklog
		if rec.Status != "" {
			if st, ok := parseStatus(rec.Status); ok {
				issue.Status = st
			} else {
				warn("unknown status %q, using %s", rec.Status, domain.StatusBacklog)
			}
		}

		if rec.ParentIssueID != nil {
			if parent := strings.TrimSpace(rec.ParentIssueID.String()); parent != "" && parent != id {
				issue.ParentIssueID = &parent
			}
		}

		issue.StartDate = convertDate(rec.StartDate, "start_date", warn)
		issue.EndDate = convertDate(rec.EndDate, "end_date", warn)
		if issue.EndDate == nil && isBlank(rec.EndDate) {
			issue.EndDate = convertDate(rec.DueDate, "due_date", warn)
		}
		if !isBlank(rec.CreatedAt) {
			if t, err := ParseTimestamp(*rec.CreatedAt); err == nil {
				issue.CreatedAt = t
			} else {
				warn("dropping created_at: %v", err)
			}
		}

		issues = append(issues, issue)
	}

	return issues, warnings
}

func convertDate(s *string, field string, warn func(string, ...any)) *time.Time {
	if isBlank(s) {
		return nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		warn("dropping %s: %v", field, err)
		return nil
	}
	return &d
}
