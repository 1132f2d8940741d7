package service

import (
	"context"

	"github.com/Sricharanredd/jira-team-1/internal/app"
	"github.com/Sricharanredd/jira-team-1/internal/repository"
)

type ViewStateService interface {
	app.ViewStateUseCase
}

type TimelineService interface {
	app.TimelineUseCase
	app.CalendarUseCase
	app.ActivityUseCase
	// LastLoad returns the newest load record of scope.
	LastLoad(ctx context.Context, scope string) (*repository.LoadRecord, error)
}
