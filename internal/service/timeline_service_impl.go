package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/app"
	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/repository"
	"github.com/Sricharanredd/jira-team-1/internal/source"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

type timelineService struct {
	source   source.Source
	views    ViewStateService
	loads    repository.LoadRecordRepo
	presets  timeline.ZoomPresets
	observer UseCaseObserver
}

func NewTimelineService(
	src source.Source,
	views ViewStateService,
	loads repository.LoadRecordRepo,
	presets timeline.ZoomPresets,
	observers ...UseCaseObserver,
) TimelineService {
	if presets == nil {
		presets = timeline.DefaultZoomPresets()
	}
	return &timelineService{
		source:   src,
		views:    views,
		loads:    loads,
		presets:  presets,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Render loads the issue collection, applies the scope's view state and
// builds the layout. Issues are fetched before any state is touched, so a
// failed full reload leaves the stored expansions as they were.
func (s *timelineService) Render(ctx context.Context, req app.RenderRequest) (resp *app.RenderResponse, err error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	fields := map[string]any{
		"scope":       req.Scope,
		"source":      s.source.Describe(),
		"refresh":     req.Refresh,
		"full_reload": req.FullReload,
	}
	defer observe(ctx, s.observer, "render-timeline", time.Now().UTC(), fields, &err)

	if req.Refresh || req.FullReload {
		if inv, ok := s.source.(source.Invalidator); ok {
			inv.Invalidate(ctx)
		}
	}

	issues, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading issues: %w", err)
	}
	fields["issue_count"] = len(issues)

	var view timeline.ViewState
	if req.FullReload {
		view, err = s.views.Reset(ctx, req.Scope)
	} else {
		view, err = s.views.Load(ctx, req.Scope)
	}
	if err != nil {
		return nil, err
	}
	if req.Zoom != nil {
		view = view.SetZoom(*req.Zoom)
	}

	presets := s.presets
	if req.Presets != nil {
		presets = req.Presets
	}
	layout := timeline.Build(issues, view, timeline.Options{Now: now, Presets: presets})
	fields["row_count"] = len(layout.Rows)
	fields["zoom"] = string(layout.Zoom)

	rec := &repository.LoadRecord{
		Scope:      req.Scope,
		Source:     s.source.Describe(),
		IssueCount: len(issues),
		GroupCount: len(layout.Headers()),
		FullReload: req.FullReload,
		LoadedAt:   now,
	}
	if err = s.loads.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("recording load: %w", err)
	}

	return &app.RenderResponse{
		Layout: layout,
		View:   view,
		Issues: issues,
		Source: s.source.Describe(),
		LoadID: rec.ID,
	}, nil
}

func (s *timelineService) Calendar(ctx context.Context, req app.CalendarRequest) (resp *app.CalendarResponse, err error) {
	defer observe(ctx, s.observer, "calendar", time.Now().UTC(),
		map[string]any{"scope": req.Scope, "month": timeline.MonthKey(req.Month)}, &err)

	issues, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading issues: %w", err)
	}
	month := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return &app.CalendarResponse{
		Month: month,
		Days:  timeline.CalendarMonth(issues, month),
	}, nil
}

// Activity lists issues created in the request's window. The window ends at
// req.Now, or the current time when unset.
func (s *timelineService) Activity(ctx context.Context, req app.ActivityRequest) (resp *app.ActivityResponse, err error) {
	days := req.Days
	if days == 0 {
		days = timeline.DefaultActivityDays
	}
	defer observe(ctx, s.observer, "activity", time.Now().UTC(),
		map[string]any{"scope": req.Scope, "days": days}, &err)

	if err = timeline.ValidateActivityDays(days); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	issues, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading issues: %w", err)
	}
	return &app.ActivityResponse{
		Days:  days,
		Since: now.Add(-domain.Days(days)),
		Feed:  timeline.ActivityFeed(issues, now, days),
	}, nil
}

func (s *timelineService) LastLoad(ctx context.Context, scope string) (*repository.LoadRecord, error) {
	return s.loads.Latest(ctx, scope)
}
