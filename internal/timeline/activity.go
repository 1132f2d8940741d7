package timeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// DefaultActivityDays is the look-back window of the activity feed.
const DefaultActivityDays = 14

// ActivityKind names what happened to an issue. Only creations are known
// from issue data.
type ActivityKind string

const ActivityCreated ActivityKind = "created"

// ActivityEntry is one event in the feed.
type ActivityEntry struct {
	Kind  ActivityKind  `json:"kind"`
	At    time.Time     `json:"at"`
	Issue *domain.Issue `json:"-"`
}

// ActivityDay holds the entries of one calendar date, newest first.
type ActivityDay struct {
	Date    time.Time       `json:"date"`
	Entries []ActivityEntry `json:"entries"`
}

// ValidateActivityDays rejects a non-positive look-back window.
func ValidateActivityDays(days int) error {
	if days <= 0 {
		return fmt.Errorf("invalid activity window %d: days must be positive", days)
	}
	return nil
}

// ActivityFeed lists issues created within the last days days before now,
// grouped by creation date. Days and the entries within a day run newest
// first; issues created at the same instant keep input order. Only dates
// with entries appear. A non-positive days uses DefaultActivityDays.
func ActivityFeed(issues []domain.Issue, now time.Time, days int) []ActivityDay {
	if days <= 0 {
		days = DefaultActivityDays
	}
	since := now.Add(-domain.Days(days))

	var entries []ActivityEntry
	for i := range issues {
		issue := &issues[i]
		if issue.CreatedAt.IsZero() || issue.CreatedAt.Before(since) {
			continue
		}
		entries = append(entries, ActivityEntry{Kind: ActivityCreated, At: issue.CreatedAt.UTC(), Issue: issue})
	}
	slices.SortStableFunc(entries, func(a, b ActivityEntry) int {
		return b.At.Compare(a.At)
	})

	var feed []ActivityDay
	for _, e := range entries {
		if n := len(feed); n > 0 && domain.SameDate(feed[n-1].Date, e.At) {
			feed[n-1].Entries = append(feed[n-1].Entries, e)
			continue
		}
		feed = append(feed, ActivityDay{Date: domain.DateOf(e.At), Entries: []ActivityEntry{e}})
	}
	return feed
}
