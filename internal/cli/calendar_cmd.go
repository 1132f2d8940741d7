package cli

import (
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/app"
	"github.com/Sricharanredd/jira-team-1/internal/cli/formatter"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/spf13/cobra"
)

func newCalendarCmd(a *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show issues per creation day for one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := month
			if key == "" {
				key = timeline.MonthKey(a.now())
			}
			m, err := timeline.ParseMonth(key)
			if err != nil {
				return err
			}

			resp, err := a.calendarUseCase().Calendar(cmd.Context(), app.CalendarRequest{Scope: a.scope(), Month: m})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(resp.Month, resp.Days))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default current month)")

	return cmd
}
