package repository

import (
	"context"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// ViewStateRecord is the persisted view state of one scope.
type ViewStateRecord struct {
	Scope     string
	Zoom      timeline.ZoomLevel
	Expanded  timeline.ExpandState
	UpdatedAt time.Time
}

// ViewState converts the record into the engine's value type.
func (r *ViewStateRecord) ViewState() timeline.ViewState {
	v := timeline.NewViewState(r.Zoom)
	for id, expanded := range r.Expanded {
		v.Expanded[id] = expanded
	}
	return v
}

// LoadRecord notes one issue load for a scope.
type LoadRecord struct {
	ID         string
	Scope      string
	Source     string
	IssueCount int
	GroupCount int
	FullReload bool
	LoadedAt   time.Time
}

type ViewStateRepo interface {
	// Get returns the stored state, wrapping ErrNotFound for an unknown scope.
	Get(ctx context.Context, scope string) (*ViewStateRecord, error)
	SaveZoom(ctx context.Context, scope string, zoom timeline.ZoomLevel) error
	SetExpansion(ctx context.Context, scope, groupID string, expanded bool) error
	ListExpansions(ctx context.Context, scope string) (timeline.ExpandState, error)
	ClearExpansions(ctx context.Context, scope string) error
}

type LoadRecordRepo interface {
	Create(ctx context.Context, rec *LoadRecord) error
	Latest(ctx context.Context, scope string) (*LoadRecord, error)
	ListRecent(ctx context.Context, scope string, limit int) ([]*LoadRecord, error)
}
