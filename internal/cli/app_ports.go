package cli

import (
	"fmt"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/app"
	"github.com/Sricharanredd/jira-team-1/internal/cli/formatter"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func (a *App) timelineUseCase() app.TimelineUseCase {
	if a.RenderTimeline != nil {
		return a.RenderTimeline
	}
	return a.Timeline
}

func (a *App) viewStateUseCase() app.ViewStateUseCase {
	if a.ViewState != nil {
		return a.ViewState
	}
	return a.Views
}

func (a *App) calendarUseCase() app.CalendarUseCase {
	if a.Calendar != nil {
		return a.Calendar
	}
	return a.Timeline
}

func (a *App) activityUseCase() app.ActivityUseCase {
	if a.Activity != nil {
		return a.Activity
	}
	return a.Timeline
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) scope() string {
	if a.Config == nil {
		return "default"
	}
	return a.Config.Scope
}

// renderRequest builds a request for the current scope and clock.
func (a *App) renderRequest(fullReload bool) app.RenderRequest {
	req := app.NewRenderRequest(a.scope())
	now := a.now()
	req.Now = &now
	req.FullReload = fullReload
	return req
}

// terminalRequest is renderRequest with day widths in terminal cells.
func (a *App) terminalRequest(fullReload bool) app.RenderRequest {
	req := a.renderRequest(fullReload)
	if a.Config != nil {
		req.Presets = a.Config.TerminalPresets()
	}
	return req
}

func (a *App) pixelRequest(fullReload bool) app.RenderRequest {
	req := a.renderRequest(fullReload)
	if a.Config != nil {
		req.Presets = a.Config.Presets()
	}
	return req
}

func (a *App) titleWidth() int {
	if a.Config == nil || a.Config.Render.SidebarWidth <= 0 {
		return formatter.DefaultTitleWidth
	}
	return a.Config.Render.SidebarWidth
}

// zoomOverride parses an optional --zoom flag value.
func zoomOverride(s string) (*timeline.ZoomLevel, error) {
	if s == "" {
		return nil, nil
	}
	z, err := timeline.ParseZoom(s)
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}
