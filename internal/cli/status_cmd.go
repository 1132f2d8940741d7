package cli

import (
	"errors"
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/cli/formatter"
	"github.com/Sricharanredd/jira-team-1/internal/repository"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored zoom, collapsed groups and last load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			view, err := app.viewStateUseCase().Load(ctx, app.scope())
			if err != nil {
				return err
			}

			var last *repository.LoadRecord
			if app.Timeline != nil {
				last, err = app.Timeline.LastLoad(ctx, app.scope())
				if err != nil && !errors.Is(err, repository.ErrNotFound) {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatViewStatus(app.scope(), view, last, app.now()))
			return nil
		},
	}
}
