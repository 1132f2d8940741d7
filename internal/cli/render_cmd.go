package cli

import (
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/cli/formatter"
	"github.com/Sricharanredd/jira-team-1/internal/export"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var zoom string
	var reload bool
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the timeline as a Gantt chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.terminalRequest(reload)
			z, err := zoomOverride(zoom)
			if err != nil {
				return err
			}
			req.Zoom = z

			resp, err := app.timelineUseCase().Render(cmd.Context(), req)
			if err != nil {
				return err
			}

			opts := formatter.DefaultGanttOptions()
			opts.TitleWidth = app.titleWidth()
			if width > 0 {
				opts.GridWidth = width
				opts.GridOffset = formatter.GridWindow(resp.Layout, width)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGantt(resp.Layout, opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&zoom, "zoom", "", "Zoom for this render only (weekly or monthly)")
	cmd.Flags().BoolVar(&reload, "reload", false, "Full reload: refetch issues and expand every group")
	cmd.Flags().IntVar(&width, "width", 0, "Visible grid width in cells, centered near today (0 for all)")

	return cmd
}

func newRowsCmd(app *App) *cobra.Command {
	var zoom string
	var reload bool

	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Print the render model (rows, bars, header, marker) as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.pixelRequest(reload)
			z, err := zoomOverride(zoom)
			if err != nil {
				return err
			}
			req.Zoom = z

			resp, err := app.timelineUseCase().Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			return export.WriteJSON(cmd.OutOrStdout(), resp.Layout)
		},
	}

	cmd.Flags().StringVar(&zoom, "zoom", "", "Zoom for this render only (weekly or monthly)")
	cmd.Flags().BoolVar(&reload, "reload", false, "Full reload: refetch issues and expand every group")

	return cmd
}
