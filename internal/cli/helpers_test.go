package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/config"
	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/repository"
	"github.com/Sricharanredd/jira-team-1/internal/service"
	"github.com/Sricharanredd/jira-team-1/internal/testutil"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

var testNow = time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)

type stubSource struct {
	issues      []domain.Issue
	err         error
	invalidated int
}

func (s *stubSource) Describe() string { return "stub" }

func (s *stubSource) Invalidate(context.Context) { s.invalidated++ }

func (s *stubSource) Load(context.Context) ([]domain.Issue, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Issue, len(s.issues))
	for i, issue := range s.issues {
		out[i] = issue.Clone()
	}
	return out, nil
}

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. HOME and the working directory point at empty temp dirs so no real
// config file is read.
func testApp(t *testing.T) (*App, *stubSource) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	database := testutil.NewTestDB(t)
	views := service.NewViewStateService(
		repository.NewSQLiteViewStateRepo(database),
		testutil.NewTestUoW(database),
		timeline.ZoomWeekly,
	)
	src := &stubSource{issues: testutil.SampleIssues()}
	cfg := config.Defaults()

	return &App{
		Timeline: service.NewTimelineService(src, views, repository.NewSQLiteLoadRecordRepo(database), nil),
		Views:    views,
		Config:   &cfg,
		Now:      func() time.Time { return testNow },
	}, src
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
