package cli

import (
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/app"
	"github.com/Sricharanredd/jira-team-1/internal/cli/formatter"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/spf13/cobra"
)

func newActivityCmd(a *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List issues created in the last few days, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := timeline.ValidateActivityDays(days); err != nil {
				return err
			}
			now := a.now()
			resp, err := a.activityUseCase().Activity(cmd.Context(), app.ActivityRequest{
				Scope: a.scope(),
				Now:   &now,
				Days:  days,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivity(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", timeline.DefaultActivityDays, "Look-back window in days (e.g. 7, 14, 30)")

	return cmd
}
