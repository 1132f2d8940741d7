package cli

import (
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/cli/formatter"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <group-id>",
		Short: "Collapse or expand one group",
		Long: "Flip the expanded flag of a group. The group ID is the epic's issue ID,\n" +
			"or " + timeline.UngroupedGroupID + " for issues without an epic.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID := args[0]
			view, err := app.viewStateUseCase().Toggle(cmd.Context(), app.scope(), groupID)
			if err != nil {
				return err
			}
			state := "Collapsed"
			if view.Expanded.IsExpanded(groupID) {
				state = "Expanded"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s group %s\n", state, formatter.Bold(groupID))
			return nil
		},
	}
}

func newZoomCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "zoom [weekly|monthly]",
		Short:     "Show or set the zoom level",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(timeline.ZoomWeekly), string(timeline.ZoomMonthly)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc := app.viewStateUseCase()

			var level timeline.ZoomLevel
			switch {
			case len(args) == 1:
				z, err := timeline.ParseZoom(args[0])
				if err != nil {
					return err
				}
				level = z
			case app.interactive():
				current, err := uc.Load(ctx, app.scope())
				if err != nil {
					return err
				}
				choice := string(current.Zoom)
				if err := zoomForm(&choice).Run(); err != nil {
					return err
				}
				level = timeline.ZoomLevel(choice)
			default:
				current, err := uc.Load(ctx, app.scope())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Zoom: %s\n", current.Zoom)
				return nil
			}

			view, err := uc.SetZoom(ctx, app.scope(), level)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Zoom set to %s\n", formatter.Bold(string(view.Zoom)))
			return nil
		},
	}
}

// zoomForm asks for a zoom level, starting on the current one.
func zoomForm(value *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(timeline.ZoomLevels))
	for _, z := range timeline.ZoomLevels {
		options = append(options, huh.NewOption(zoomLabel(z), string(z)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Zoom level").
				Options(options...).
				Value(value),
		),
	).WithTheme(timelineHuhTheme()).WithShowHelp(false)
}

func zoomLabel(z timeline.ZoomLevel) string {
	switch z {
	case timeline.ZoomWeekly:
		return "Weekly (one labeled column per day)"
	case timeline.ZoomMonthly:
		return "Monthly (compact, labeled by month)"
	default:
		return string(z)
	}
}

func newReloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Refetch issues and expand every group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.timelineUseCase().Render(cmd.Context(), app.terminalRequest(true))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reloaded %d issues in %d groups from %s; all groups expanded.\n",
				len(resp.Issues), len(resp.Layout.Headers()), resp.Source)
			return nil
		},
	}
}
