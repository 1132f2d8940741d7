package app

import (
	"context"

	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// TimelineUseCase loads issues and lays them out under the scope's view state.
type TimelineUseCase interface {
	Render(ctx context.Context, req RenderRequest) (*RenderResponse, error)
}

// CalendarUseCase buckets issues by creation day for one month.
type CalendarUseCase interface {
	Calendar(ctx context.Context, req CalendarRequest) (*CalendarResponse, error)
}

// ActivityUseCase lists recently created issues, newest first.
type ActivityUseCase interface {
	Activity(ctx context.Context, req ActivityRequest) (*ActivityResponse, error)
}

// ViewStateUseCase reads and changes the persisted view state of a scope.
// Every method returns the state after the change.
type ViewStateUseCase interface {
	Load(ctx context.Context, scope string) (timeline.ViewState, error)
	Toggle(ctx context.Context, scope, groupID string) (timeline.ViewState, error)
	SetZoom(ctx context.Context, scope string, zoom timeline.ZoomLevel) (timeline.ViewState, error)
	Reset(ctx context.Context, scope string) (timeline.ViewState, error)
}
