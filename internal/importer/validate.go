package importer

import (
	"fmt"
	"strings"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// ReservedIssueID is the group key the layout engine uses for issues without
// an epic. No real issue may carry it.
const ReservedIssueID = timeline.UngroupedGroupID

// ValidateIssues checks a batch before conversion and returns every problem
// found. An empty type or status is accepted and defaulted by Convert.
func ValidateIssues(issues []IssueImport) []error {
	var errs []error
	seen := make(map[string]int, len(issues))

	for i := range issues {
		is := &issues[i]
		prefix := fmt.Sprintf("issues[%d]", i)
		id := strings.TrimSpace(is.ID.String())

		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		case id == ReservedIssueID:
			errs = append(errs, fmt.Errorf("%s: id %q is reserved", prefix, id))
		default:
			prefix = fmt.Sprintf("issues[%d] (id %s)", i, id)
			if first, dup := seen[id]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate id, first seen at issues[%d]", prefix, first))
			} else {
				seen[id] = i
			}
		}

		if strings.TrimSpace(is.Title) == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", prefix))
		}
		if is.IssueType != "" {
			if _, ok := parseIssueType(is.IssueType); !ok {
				errs = append(errs, fmt.Errorf("%s: unknown issue_type %q", prefix, is.IssueType))
			}
		}
		if is.Status != "" {
			if _, ok := parseStatus(is.Status); !ok {
				errs = append(errs, fmt.Errorf("%s: unknown status %q", prefix, is.Status))
			}
		}
		if is.ParentIssueID != nil && id != "" && is.ParentIssueID.String() == id {
			errs = append(errs, fmt.Errorf("%s: issue cannot be its own parent", prefix))
		}

		errs = append(errs, validateOptionalDate(prefix+".start_date", is.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".end_date", is.EndDate)...)
		errs = append(errs, validateOptionalDate(prefix+".due_date", is.DueDate)...)
		errs = append(errs, validateOptionalDate(prefix+".created_at", is.CreatedAt)...)
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if isBlank(dateStr) {
		return nil
	}
	if _, err := ParseTimestamp(*dateStr); err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	return nil
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

func parseIssueType(s string) (domain.IssueType, bool) {
	t := domain.IssueType(normalizeEnum(s))
	if t == "sub_task" {
		t = domain.TypeSubtask
	}
	return t, t.IsValid()
}

func parseStatus(s string) (domain.Status, bool) {
	st := domain.Status(normalizeEnum(s))
	if st == "to_do" {
		st = domain.StatusTodo
	}
	return st, st.IsValid()
}
