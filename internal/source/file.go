package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/importer"
)

// FileSource reads issues from a JSON, JSONL or YAML file on every Load.
type FileSource struct {
	path   string
	logger *slog.Logger
}

func NewFileSource(path string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, logger: loggerOrDiscard(logger)}
}

// Path returns the file being read.
func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Describe() string { return "file:" + s.path }

func (s *FileSource) Load(ctx context.Context) ([]domain.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	batch, err := importer.LoadIssues(s.path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}
	return convertBatch(ctx, s.logger, s.Describe(), batch), nil
}
