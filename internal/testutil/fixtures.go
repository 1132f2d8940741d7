package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

var testIssueCounter atomic.Int64

// Date returns midnight UTC of the given calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Issue options
type IssueOption func(*domain.Issue)

func WithID(id string) IssueOption {
	return func(i *domain.Issue) {
		i.ID = id
	}
}

func WithParent(id string) IssueOption {
	return func(i *domain.Issue) {
		i.ParentIssueID = &id
	}
}

func WithStatus(s domain.Status) IssueOption {
	return func(i *domain.Issue) {
		i.Status = s
	}
}

func WithType(t domain.IssueType) IssueOption {
	return func(i *domain.Issue) {
		i.IssueType = t
	}
}

func WithDates(start, end time.Time) IssueOption {
	return func(i *domain.Issue) {
		i.StartDate = &start
		i.EndDate = &end
	}
}

func WithStart(start time.Time) IssueOption {
	return func(i *domain.Issue) {
		i.StartDate = &start
	}
}

func WithCreatedAt(t time.Time) IssueOption {
	return func(i *domain.Issue) {
		i.CreatedAt = t
	}
}

func WithStoryCode(code string) IssueOption {
	return func(i *domain.Issue) {
		i.StoryCode = code
	}
}

// NewTestIssue builds a backlog story with a generated numeric ID.
func NewTestIssue(title string, opts ...IssueOption) domain.Issue {
	issue := domain.Issue{
		ID:        fmt.Sprintf("%d", 1000+testIssueCounter.Add(1)),
		Title:     title,
		IssueType: domain.TypeStory,
		Status:    domain.StatusBacklog,
	}
	for _, opt := range opts {
		opt(&issue)
	}
	return issue
}

// NewTestEpic builds an epic with the given ID.
func NewTestEpic(id, title string, opts ...IssueOption) domain.Issue {
	opts = append([]IssueOption{WithID(id), WithType(domain.TypeEpic), WithStatus(domain.StatusInProgress)}, opts...)
	return NewTestIssue(title, opts...)
}

// SampleIssues returns two epics with children plus one orphan, all dated
// around March 2024.
func SampleIssues() []domain.Issue {
	return []domain.Issue{
		NewTestEpic("1", "Checkout revamp", WithDates(Date(2024, 3, 1), Date(2024, 3, 20)), WithStoryCode("EP-1")),
		NewTestIssue("Cart API", WithID("2"), WithParent("1"), WithStatus(domain.StatusDone),
			WithDates(Date(2024, 3, 1), Date(2024, 3, 6)), WithStoryCode("ST-2")),
		NewTestIssue("Payment form", WithID("3"), WithParent("1"), WithStatus(domain.StatusInProgress),
			WithStart(Date(2024, 3, 4)), WithStoryCode("ST-3")),
		NewTestEpic("4", "Search"),
		NewTestIssue("Index builder", WithID("5"), WithParent("4"), WithType(domain.TypeTask),
			WithStatus(domain.StatusTodo), WithCreatedAt(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))),
		NewTestIssue("Flaky login", WithID("6"), WithType(domain.TypeBug), WithStatus(domain.StatusTesting),
			WithDates(Date(2024, 3, 7), Date(2024, 3, 9))),
	}
}
