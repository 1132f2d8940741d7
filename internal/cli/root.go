package cli

import (
	"fmt"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/app"
	"github.com/Sricharanredd/jira-team-1/internal/config"
	"github.com/Sricharanredd/jira-team-1/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timeline service.TimelineService
	Views    service.ViewStateService

	// Optional use-case overrides; the services above are used when nil.
	RenderTimeline app.TimelineUseCase
	ViewState      app.ViewStateUseCase
	Calendar       app.CalendarUseCase
	Activity       app.ActivityUseCase

	// Config is populated before any subcommand runs.
	Config *config.Config

	// Setup wires the services from the loaded config. Tests that assign
	// services directly leave it nil.
	Setup func(cfg *config.Config) error

	IsInteractive func() bool
	Now           func() time.Time
}

// NewRootCmd creates the top-level "timeline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var cfgFile string
	v := config.NewViper()

	root := &cobra.Command{
		Use:           "timeline",
		Short:         "Gantt timeline for epics, stories, tasks and bugs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			app.Config = cfg
			if app.Setup != nil {
				if err := app.Setup(cfg); err != nil {
					return fmt.Errorf("setting up: %w", err)
				}
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./.timeline.yaml or ~/.config/timeline/config.yaml)")
	flags.String("scope", "", "View-state scope (default \"default\")")
	flags.String("file", "", "Issue file (JSON, JSONL or YAML)")
	flags.String("api-url", "", "Tracker API base URL")
	flags.String("project", "", "Tracker project ID")
	bindFlag(v, "scope", flags.Lookup("scope"))
	bindFlag(v, "source.file", flags.Lookup("file"))
	bindFlag(v, "source.api_url", flags.Lookup("api-url"))
	bindFlag(v, "source.project_id", flags.Lookup("project"))

	root.AddCommand(
		newRenderCmd(app),
		newRowsCmd(app),
		newToggleCmd(app),
		newZoomCmd(app),
		newReloadCmd(app),
		newExportCmd(app),
		newCalendarCmd(app),
		newActivityCmd(app),
		newStatusCmd(app),
		newViewCmd(app),
	)

	return root
}
