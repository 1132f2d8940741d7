package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Sricharanredd/jira-team-1/internal/export"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var svgPath, jsonPath, zoom string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the timeline to an SVG Gantt chart or a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if svgPath == "" && jsonPath == "" {
				return errors.New("nothing to export: pass --svg and/or --json")
			}
			req := app.pixelRequest(false)
			z, err := zoomOverride(zoom)
			if err != nil {
				return err
			}
			req.Zoom = z

			resp, err := app.timelineUseCase().Render(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if svgPath != "" {
				if err := writeFile(svgPath, resp.Layout, export.WriteSVG); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s (%d rows)\n", svgPath, len(resp.Layout.Rows))
			}
			if jsonPath != "" {
				if err := writeFile(jsonPath, resp.Layout, export.WriteJSON); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s (%d rows)\n", jsonPath, len(resp.Layout.Rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "Write an SVG Gantt chart to this path")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Write the render model as JSON to this path")
	cmd.Flags().StringVar(&zoom, "zoom", "", "Zoom for this export only (weekly or monthly)")

	return cmd
}

func writeFile(path string, layout *timeline.Layout, write func(io.Writer, *timeline.Layout) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f, layout)
}
