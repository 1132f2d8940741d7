package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/db"
	"github.com/Sricharanredd/jira-team-1/internal/repository"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

type viewStateService struct {
	views       repository.ViewStateRepo
	uow         db.UnitOfWork
	defaultZoom timeline.ZoomLevel
	observer    UseCaseObserver
}

// NewViewStateService persists view state through views. Multi-statement
// changes run inside uow. Scopes never saved start at defaultZoom with every
// group expanded.
func NewViewStateService(
	views repository.ViewStateRepo,
	uow db.UnitOfWork,
	defaultZoom timeline.ZoomLevel,
	observers ...UseCaseObserver,
) ViewStateService {
	if !defaultZoom.IsValid() {
		defaultZoom = timeline.ZoomWeekly
	}
	return &viewStateService{
		views:       views,
		uow:         uow,
		defaultZoom: defaultZoom,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *viewStateService) Load(ctx context.Context, scope string) (timeline.ViewState, error) {
	return s.load(ctx, s.views, scope)
}

func (s *viewStateService) load(ctx context.Context, repo repository.ViewStateRepo, scope string) (timeline.ViewState, error) {
	rec, err := repo.Get(ctx, scope)
	if errors.Is(err, repository.ErrNotFound) {
		return timeline.NewViewState(s.defaultZoom), nil
	}
	if err != nil {
		return timeline.ViewState{}, fmt.Errorf("loading view state: %w", err)
	}
	return rec.ViewState(), nil
}

func (s *viewStateService) Toggle(ctx context.Context, scope, groupID string) (next timeline.ViewState, err error) {
	defer observe(ctx, s.observer, "toggle-group", time.Now().UTC(),
		map[string]any{"scope": scope, "group_id": groupID}, &err)

	if groupID == "" {
		return timeline.ViewState{}, fmt.Errorf("group id is required")
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteViewStateRepo(tx)
		current, err := s.load(ctx, repo, scope)
		if err != nil {
			return err
		}
		next = current.ToggleGroup(groupID)
		// Pins the zoom so a first write does not fall back to the column default.
		if err := repo.SaveZoom(ctx, scope, next.Zoom); err != nil {
			return err
		}
		return repo.SetExpansion(ctx, scope, groupID, next.Expanded.IsExpanded(groupID))
	})
	return next, err
}

func (s *viewStateService) SetZoom(ctx context.Context, scope string, zoom timeline.ZoomLevel) (next timeline.ViewState, err error) {
	defer observe(ctx, s.observer, "set-zoom", time.Now().UTC(),
		map[string]any{"scope": scope, "zoom": string(zoom)}, &err)

	if !zoom.IsValid() {
		return timeline.ViewState{}, fmt.Errorf("unknown zoom level %q", zoom)
	}
	if err = s.views.SaveZoom(ctx, scope, zoom); err != nil {
		return timeline.ViewState{}, err
	}
	return s.Load(ctx, scope)
}

// Reset clears every stored expansion of scope, keeping its zoom.
func (s *viewStateService) Reset(ctx context.Context, scope string) (next timeline.ViewState, err error) {
	defer observe(ctx, s.observer, "reset-view", time.Now().UTC(),
		map[string]any{"scope": scope}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteViewStateRepo(tx)
		current, err := s.load(ctx, repo, scope)
		if err != nil {
			return err
		}
		if err := repo.SaveZoom(ctx, scope, current.Zoom); err != nil {
			return err
		}
		if err := repo.ClearExpansions(ctx, scope); err != nil {
			return err
		}
		next = current.Reset()
		return nil
	})
	return next, err
}
