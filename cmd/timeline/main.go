package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/Sricharanredd/jira-team-1/internal/cli"
	"github.com/Sricharanredd/jira-team-1/internal/config"
	"github.com/Sricharanredd/jira-team-1/internal/db"
	"github.com/Sricharanredd/jira-team-1/internal/repository"
	"github.com/Sricharanredd/jira-team-1/internal/service"
	"github.com/Sricharanredd/jira-team-1/internal/source"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	// Services are wired once flags, env and the config file are merged.
	app.Setup = func(cfg *config.Config) error {
		conn, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		database = conn

		logger := newLogger(cfg)
		var observers []service.UseCaseObserver
		if cfg.Log.Enabled {
			observers = append(observers, service.NewSlogUseCaseObserver(logger))
		}

		src := source.New(source.Settings{
			File:      cfg.Source.File,
			APIURL:    cfg.Source.APIURL,
			ProjectID: cfg.Source.ProjectID,
			Token:     cfg.Source.Token,
			Timeout:   cfg.Source.Timeout,
			CacheTTL:  cfg.Source.CacheTTL,
		}, logger)

		// Wire repositories
		viewRepo := repository.NewSQLiteViewStateRepo(conn)
		loadRepo := repository.NewSQLiteLoadRecordRepo(conn)

		// Wire unit of work for transactional operations
		uow := db.NewSQLiteUnitOfWork(conn)

		// Wire services
		views := service.NewViewStateService(viewRepo, uow, cfg.DefaultZoom(), observers...)
		app.Views = views
		app.Timeline = service.NewTimelineService(src, views, loadRepo, cfg.Presets(), observers...)
		return nil
	}

	// Detect interactive terminal for prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger writes to stderr. Import warnings always show; use-case events
// follow log.level once log.enabled is set.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Log.Enabled {
		level = cfg.LogLevel()
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
