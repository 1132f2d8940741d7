package timeline

import (
	"strconv"
	"testing"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"pgregory.net/rapid"
)

var (
	allTypes    = []domain.IssueType{domain.TypeEpic, domain.TypeStory, domain.TypeTask, domain.TypeBug, domain.TypeSubtask}
	allStatuses = []domain.Status{domain.StatusBacklog, domain.StatusTodo, domain.StatusInProgress, domain.StatusTesting, domain.StatusDone}
)

// issuesGen draws a collection with unique ids and a mix of dangling,
// missing and valid parent references.
func issuesGen(t *rapid.T) []domain.Issue {
	base := date(2024, 1, 1)
	n := rapid.IntRange(0, 25).Draw(t, "n")
	issues := make([]domain.Issue, n)
	for i := range issues {
		issue := domain.Issue{
			ID:        strconv.Itoa(i + 1),
			Title:     "Issue " + strconv.Itoa(i+1),
			IssueType: rapid.SampledFrom(allTypes).Draw(t, "type"),
			Status:    rapid.SampledFrom(allStatuses).Draw(t, "status"),
		}
		if rapid.Bool().Draw(t, "hasParent") {
			p := strconv.Itoa(rapid.IntRange(0, n+2).Draw(t, "parent"))
			issue.ParentIssueID = &p
		}
		if rapid.Bool().Draw(t, "hasStart") {
			s := domain.AddDays(base, rapid.IntRange(-60, 120).Draw(t, "start"))
			issue.StartDate = &s
		}
		if rapid.Bool().Draw(t, "hasEnd") {
			e := domain.AddDays(base, rapid.IntRange(-60, 180).Draw(t, "end"))
			issue.EndDate = &e
		}
		if rapid.Bool().Draw(t, "hasCreated") {
			hours := rapid.IntRange(0, 23).Draw(t, "hour")
			c := domain.AddDays(base, rapid.IntRange(-90, 90).Draw(t, "created")).Add(time.Duration(hours) * time.Hour)
			issue.CreatedAt = c
		}
		issues[i] = issue
	}
	return issues
}

func nowGen(t *rapid.T) time.Time {
	return domain.AddDays(date(2024, 1, 1), rapid.IntRange(-120, 240).Draw(t, "now")).
		Add(time.Duration(rapid.IntRange(0, 1439).Draw(t, "minute")) * time.Minute)
}

func TestProperty_RangeCoversEveryBar(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		issues := issuesGen(t)
		now := nowGen(t)

		rng := ResolveRange(issues, now)
		if !rng.Max.After(rng.Min) {
			t.Fatalf("degenerate range %s..%s", rng.Min, rng.Max)
		}
		for i := range issues {
			start, ok := issues[i].EffectiveStart()
			if !ok {
				continue
			}
			end, _ := issues[i].EffectiveEnd()
			if end.Before(start) {
				end = start
			}
			if !rng.Contains(start) || !rng.Contains(end) {
				t.Fatalf("issue %s [%s, %s] escapes %s..%s", issues[i].ID, start, end, rng.Min, rng.Max)
			}
		}
	})
}

func TestProperty_GroupingIsCompleteAndDisjoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		issues := issuesGen(t)

		seen := make(map[string]int)
		for _, g := range GroupIssues(issues) {
			if g.Epic != nil {
				seen[g.Epic.ID]++
			}
			for _, c := range g.Children {
				if c.IsEpic() {
					t.Fatalf("epic %s placed as a child", c.ID)
				}
				seen[c.ID]++
			}
		}
		for _, issue := range issues {
			if seen[issue.ID] != 1 {
				t.Fatalf("issue %s appears %d times", issue.ID, seen[issue.ID])
			}
		}
	})
}

func TestProperty_FlattenRowCountsAndDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		issues := issuesGen(t)
		groups := GroupIssues(issues)

		state := ExpandState{}
		for _, g := range groups {
			if rapid.Bool().Draw(t, "collapse") {
				state = state.Toggle(g.ID)
			}
		}

		rows := Flatten(groups, state)
		want := len(groups)
		for _, g := range groups {
			if state.IsExpanded(g.ID) {
				want += len(g.Children)
			}
		}
		if len(rows) != want {
			t.Fatalf("got %d rows, want %d", len(rows), want)
		}

		again := Flatten(groups, state)
		for i := range rows {
			if rows[i].Kind != again[i].Kind || rows[i].ID != again[i].ID {
				t.Fatalf("row %d differs between runs", i)
			}
		}

		if len(groups) > 0 {
			target := groups[rapid.IntRange(0, len(groups)-1).Draw(t, "toggled")].ID
			restored := Flatten(groups, state.Toggle(target).Toggle(target))
			if len(restored) != len(rows) {
				t.Fatalf("double toggle changed row count")
			}
			for i := range rows {
				if rows[i].Kind != restored[i].Kind || rows[i].ID != restored[i].ID {
					t.Fatalf("double toggle changed row %d", i)
				}
			}
		}
	})
}

func TestProperty_GeometryStaysOnGrid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		issues := issuesGen(t)
		now := nowGen(t)
		zoom := rapid.SampledFrom(ZoomLevels).Draw(t, "zoom")
		width := rapid.IntRange(-2, 60).Draw(t, "dayWidth")

		layout := Build(issues, NewViewState(zoom), Options{Now: now, Presets: ZoomPresets{zoom: width}})

		if len(layout.Header)*layout.DayWidth != layout.TotalWidth {
			t.Fatalf("header cells do not span total width")
		}
		for _, row := range layout.Rows {
			if row.Bar == nil {
				continue
			}
			b := row.Bar
			if b.Width < layout.DayWidth {
				t.Fatalf("row %s width %d below one day", row.ID, b.Width)
			}
			if b.Offset < 0 || b.Offset+b.Width > layout.TotalWidth {
				t.Fatalf("row %s bar [%d,+%d] outside [0,%d]", row.ID, b.Offset, b.Width, layout.TotalWidth)
			}
			if b.Progress < 0 || b.Progress > 1 {
				t.Fatalf("row %s progress %f outside [0,1]", row.ID, b.Progress)
			}
			if row.Status == domain.StatusDone && b.Progress != 1 {
				t.Fatalf("done row %s has progress %f", row.ID, b.Progress)
			}
		}

		inRange := layout.Range.Contains(now)
		if inRange != (layout.TodayMarker != nil) {
			t.Fatalf("marker presence %v, today in range %v", layout.TodayMarker != nil, inRange)
		}
	})
}
