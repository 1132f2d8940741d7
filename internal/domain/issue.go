package domain

import "time"

// DefaultSpanDays is the span given to an issue that has no end date.
const DefaultSpanDays = 14

// Issue is one tracker item as returned by the issue API. The engine never
// mutates it.
type Issue struct {
	ID            string
	Title         string
	IssueType     IssueType
	ParentIssueID *string
	Status        Status
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time

	// Display-only fields carried through to renderers.
	StoryCode string
	Assignee  string
	ProjectID string
	Sprint    string
}

// IsEpic reports whether the issue is an epic.
func (i *Issue) IsEpic() bool {
	return i.IssueType == TypeEpic
}

// ParentID returns the parent reference, or "" when the issue has none.
func (i *Issue) ParentID() string {
	if i.ParentIssueID == nil {
		return ""
	}
	return *i.ParentIssueID
}

// HasParent reports whether the issue carries a non-empty parent reference.
func (i *Issue) HasParent() bool {
	return i.ParentID() != ""
}

// EffectiveStart is StartDate when set, else CreatedAt, normalized to a date.
// ok is false only when neither is available.
func (i *Issue) EffectiveStart() (time.Time, bool) {
	if i.StartDate != nil {
		return DateOf(*i.StartDate), true
	}
	if !i.CreatedAt.IsZero() {
		return DateOf(i.CreatedAt), true
	}
	return time.Time{}, false
}

// EffectiveEnd is EndDate when set, else the effective start plus
// DefaultSpanDays. CreatedAt is never an end-date fallback.
func (i *Issue) EffectiveEnd() (time.Time, bool) {
	if i.EndDate != nil {
		return DateOf(*i.EndDate), true
	}
	start, ok := i.EffectiveStart()
	if !ok {
		return time.Time{}, false
	}
	return AddDays(start, DefaultSpanDays), true
}

// Clone creates a deep copy of the issue.
func (i Issue) Clone() Issue {
	clone := i
	if i.ParentIssueID != nil {
		v := *i.ParentIssueID
		clone.ParentIssueID = &v
	}
	if i.StartDate != nil {
		v := *i.StartDate
		clone.StartDate = &v
	}
	if i.EndDate != nil {
		v := *i.EndDate
		clone.EndDate = &v
	}
	return clone
}
