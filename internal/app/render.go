package app

import (
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

type RenderRequest struct {
	Scope string
	Now   *time.Time
	// Zoom overrides the stored zoom for this render only.
	Zoom *timeline.ZoomLevel
	// Presets overrides the configured day widths, e.g. with terminal cells.
	Presets timeline.ZoomPresets
	// Refresh drops cached issues but keeps the stored view state.
	Refresh bool
	// FullReload drops cached issues and resets every group to expanded.
	FullReload bool
}

func NewRenderRequest(scope string) RenderRequest {
	return RenderRequest{Scope: scope}
}

type RenderResponse struct {
	Layout *timeline.Layout
	View   timeline.ViewState
	Issues []domain.Issue
	Source string
	LoadID string
}

type CalendarRequest struct {
	Scope string
	Month time.Time
}

type CalendarResponse struct {
	Month time.Time
	Days  []timeline.CalendarDay
}

type ActivityRequest struct {
	Scope string
	Now   *time.Time
	// Days is the look-back window; zero means timeline.DefaultActivityDays.
	Days int
}

type ActivityResponse struct {
	Days  int
	Since time.Time
	Feed  []timeline.ActivityDay
}
