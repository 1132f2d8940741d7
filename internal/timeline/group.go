package timeline

import "github.com/Sricharanredd/jira-team-1/internal/domain"

// UngroupedGroupID keys the synthetic bucket of issues without an epic.
// Issue IDs are validated on import never to take this value.
const UngroupedGroupID = "__ungrouped__"

// UngroupedTitle is the header shown for the synthetic bucket.
const UngroupedTitle = "Issues without epic"

// Group is an epic with its direct children, or the synthetic bucket.
type Group struct {
	ID       string
	Title    string
	Epic     *domain.Issue // nil for the ungrouped bucket
	Children []*domain.Issue
}

// IsUngrouped reports whether g is the synthetic bucket.
func (g *Group) IsUngrouped() bool {
	return g.Epic == nil
}

// GroupIssues partitions issues into epic groups, in input order, followed by
// the ungrouped bucket when it is non-empty.
//
// A non-epic issue joins the group of the epic its parent reference names.
// When the reference is missing, dangling, or names a non-epic, the issue
// lands in the ungrouped bucket. Epics are always top-level, whatever their
// own parent reference says. Each issue appears in at most one group.
func GroupIssues(issues []domain.Issue) []Group {
	groups := make([]Group, 0)
	epicIndex := make(map[string]int)

	for i := range issues {
		issue := &issues[i]
		if !issue.IsEpic() {
			continue
		}
		if _, dup := epicIndex[issue.ID]; dup {
			// A repeated epic id keeps its first occurrence as the group owner.
			continue
		}
		epicIndex[issue.ID] = len(groups)
		groups = append(groups, Group{ID: issue.ID, Title: issue.Title, Epic: issue})
	}

	var orphans []*domain.Issue
	for i := range issues {
		issue := &issues[i]
		if issue.IsEpic() {
			continue
		}
		if idx, ok := epicIndex[issue.ParentID()]; ok && issue.HasParent() {
			groups[idx].Children = append(groups[idx].Children, issue)
			continue
		}
		orphans = append(orphans, issue)
	}

	if len(orphans) > 0 {
		groups = append(groups, Group{
			ID:       UngroupedGroupID,
			Title:    UngroupedTitle,
			Children: orphans,
		})
	}

	return groups
}
