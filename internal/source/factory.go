package source

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
)

// ErrNoSource is returned by Load when no issue location is configured.
var ErrNoSource = errors.New("no issue source configured: pass --file or --api-url")

// Settings selects a Source. File wins over APIURL; a positive CacheTTL puts
// a read-through cache in front of either.
type Settings struct {
	File      string
	APIURL    string
	ProjectID string
	Token     string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// New builds the Source described by s. Without a file or API URL it returns
// a source whose Load fails with ErrNoSource, so commands that only touch
// view state still work.
func New(s Settings, logger *slog.Logger) Source {
	var src Source
	switch {
	case s.File != "":
		src = NewFileSource(s.File, logger)
	case s.APIURL != "":
		src = NewHTTPSource(HTTPConfig{
			BaseURL:   s.APIURL,
			ProjectID: s.ProjectID,
			Token:     s.Token,
			Timeout:   s.Timeout,
		}, nil, logger)
	default:
		return unconfigured{}
	}
	if s.CacheTTL > 0 {
		src = NewCachedSource(src, s.CacheTTL, logger)
	}
	return src
}

type unconfigured struct{}

func (unconfigured) Describe() string { return "none" }

func (unconfigured) Load(context.Context) ([]domain.Issue, error) {
	return nil, ErrNoSource
}
