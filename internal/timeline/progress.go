package timeline

import (
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// Progress returns the completion fraction in [0, 1] of an item spanning
// start..end at instant now. end must already be the effective end.
func Progress(start *time.Time, end time.Time, status domain.Status, now time.Time) float64 {
	if status.IsDone() {
		return 1
	}
	if start == nil {
		return 0
	}
	s := *start
	if now.Before(s) {
		return 0
	}
	if now.After(end) {
		return 1
	}
	if !end.After(s) {
		return 1
	}

	f := float64(now.Sub(s)) / float64(end.Sub(s))
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// IssueProgress applies Progress to an issue's effective dates.
func IssueProgress(issue *domain.Issue, now time.Time) float64 {
	start, ok := issue.EffectiveStart()
	end, _ := issue.EffectiveEnd()
	if !ok {
		return Progress(nil, end, issue.Status, now)
	}
	return Progress(&start, end, issue.Status, now)
}
