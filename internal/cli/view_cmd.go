package cli

import (
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the timeline interactively",
		Long: "Full-screen timeline. Groups toggle with enter or space, z flips the zoom,\n" +
			"r refreshes keeping the view state and R reloads with every group expanded.\n" +
			"When issues come from a file, saving the file refreshes the view.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes <-chan struct{}
			if app.Config != nil && app.Config.Source.File != "" {
				w, err := watcher.New(watcher.Config{Path: app.Config.Source.File})
				if err != nil {
					return err
				}
				defer w.Stop()
				if changes, err = w.Start(); err != nil {
					return err
				}
			}

			p := tea.NewProgram(newTimelineModel(app, changes),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running timeline view: %w", err)
			}
			return nil
		},
	}
}
