package domain

// IssueType categorizes the kind of work an issue tracks.
type IssueType string

const (
	TypeEpic    IssueType = "epic"
	TypeStory   IssueType = "story"
	TypeTask    IssueType = "task"
	TypeBug     IssueType = "bug"
	TypeSubtask IssueType = "subtask"
)

// IsValid returns true if the issue type is a recognized value.
func (t IssueType) IsValid() bool {
	switch t {
	case TypeEpic, TypeStory, TypeTask, TypeBug, TypeSubtask:
		return true
	}
	return false
}

// Status is the workflow column an issue currently sits in.
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusTesting    Status = "testing"
	StatusDone       Status = "done"
)

// IsValid returns true if the status is a recognized value.
func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusTesting, StatusDone:
		return true
	}
	return false
}

// IsDone reports whether the status is terminal.
func (s Status) IsDone() bool {
	return s == StatusDone
}

// Label returns the board column label used in the tracker UI.
func (s Status) Label() string {
	switch s {
	case StatusBacklog:
		return "Backlog"
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusTesting:
		return "Testing"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}
