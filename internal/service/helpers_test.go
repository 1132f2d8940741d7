package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/repository"
	"github.com/Sricharanredd/jira-team-1/internal/testutil"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

var testNow = time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)

type staticSource struct {
	issues      []domain.Issue
	err         error
	loads       int
	invalidated int
}

func (s *staticSource) Describe() string { return "static" }

func (s *staticSource) Load(context.Context) ([]domain.Issue, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Issue, len(s.issues))
	copy(out, s.issues)
	return out, nil
}

func (s *staticSource) Invalidate(context.Context) { s.invalidated++ }

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

type fixture struct {
	db       *sql.DB
	src      *staticSource
	views    ViewStateService
	timeline TimelineService
	loads    repository.LoadRecordRepo
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	src := &staticSource{issues: testutil.SampleIssues()}
	views := NewViewStateService(repository.NewSQLiteViewStateRepo(database), testutil.NewTestUoW(database), timeline.ZoomWeekly, obs)
	loads := repository.NewSQLiteLoadRecordRepo(database)
	return &fixture{
		db:       database,
		src:      src,
		views:    views,
		timeline: NewTimelineService(src, views, loads, nil, obs),
		loads:    loads,
		observer: obs,
	}
}
