// Package source fetches issue collections for the timeline: from an exported
// issue file, from the tracker's HTTP API, or through a TTL cache in front of
// either.
package source

import (
	"context"
	"log/slog"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/importer"
)

// Source loads the current issue collection.
type Source interface {
	Load(ctx context.Context) ([]domain.Issue, error)
	// Describe names the source for logs and load records.
	Describe() string
}

// Invalidator is implemented by sources that hold cached data.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// convertBatch validates and converts a decoded batch. Problems are logged as
// warnings; only records that cannot be identified are dropped.
func convertBatch(ctx context.Context, logger *slog.Logger, origin string, batch *importer.Batch) []domain.Issue {
	for _, err := range batch.Skipped {
		logger.WarnContext(ctx, "skipped undecodable issue record", "source", origin, "error", err)
	}
	for _, err := range importer.ValidateIssues(batch.Issues) {
		logger.WarnContext(ctx, "issue validation", "source", origin, "error", err)
	}

	issues, repairs := importer.Convert(batch.Issues)
	for _, err := range repairs {
		logger.DebugContext(ctx, "issue repaired on import", "source", origin, "detail", err)
	}
	return issues
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
