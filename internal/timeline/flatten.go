package timeline

import "github.com/Sricharanredd/jira-team-1/internal/domain"

// RowKind distinguishes group headers from leaf rows.
type RowKind string

const (
	RowGroupHeader RowKind = "group"
	RowLeaf        RowKind = "leaf"
)

// Row is one renderable line of the timeline. Its identity is (Kind, ID).
type Row struct {
	Kind       RowKind          `json:"kind"`
	ID         string           `json:"id"`
	GroupID    string           `json:"group_id"`
	Title      string           `json:"title"`
	IssueType  domain.IssueType `json:"issue_type,omitempty"`
	Status     domain.Status    `json:"status,omitempty"`
	StoryCode  string           `json:"story_code,omitempty"`
	Depth      int              `json:"depth"`
	Expanded   bool             `json:"expanded,omitempty"`
	ChildCount int              `json:"child_count,omitempty"`
	Bar        *Bar             `json:"bar,omitempty"`

	Issue *domain.Issue `json:"-"`
}

// IsHeader reports whether the row is a group header.
func (r *Row) IsHeader() bool {
	return r.Kind == RowGroupHeader
}

// Flatten emits one header per group and, for expanded groups, one leaf per
// child in the group's child order. The output depends only on the arguments.
func Flatten(groups []Group, state ExpandState) []Row {
	rows := make([]Row, 0, len(groups))
	for gi := range groups {
		g := &groups[gi]
		expanded := state.IsExpanded(g.ID)

		header := Row{
			Kind:       RowGroupHeader,
			ID:         g.ID,
			GroupID:    g.ID,
			Title:      g.Title,
			Expanded:   expanded,
			ChildCount: len(g.Children),
			Issue:      g.Epic,
		}
		if g.Epic != nil {
			header.IssueType = g.Epic.IssueType
			header.Status = g.Epic.Status
			header.StoryCode = g.Epic.StoryCode
		}
		rows = append(rows, header)

		if !expanded {
			continue
		}
		for _, child := range g.Children {
			rows = append(rows, Row{
				Kind:      RowLeaf,
				ID:        child.ID,
				GroupID:   g.ID,
				Title:     child.Title,
				IssueType: child.IssueType,
				Status:    child.Status,
				StoryCode: child.StoryCode,
				Depth:     1,
				Issue:     child,
			})
		}
	}
	return rows
}
