package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/Sricharanredd/jira-team-1/internal/importer"
)

const (
	userStoryPath      = "/user-story"
	maxResponseBytes   = 50 << 20
	defaultHTTPTimeout = 15 * time.Second
)

// HTTPConfig points an HTTPSource at the tracker API.
type HTTPConfig struct {
	BaseURL   string
	ProjectID string
	Token     string
	Timeout   time.Duration
}

// HTTPSource fetches GET {BaseURL}/user-story?project_id={ProjectID}.
type HTTPSource struct {
	cfg    HTTPConfig
	client *http.Client
	logger *slog.Logger
}

// NewHTTPSource builds a source over client, or a client with cfg.Timeout
// when client is nil.
func NewHTTPSource(cfg HTTPConfig, client *http.Client, logger *slog.Logger) *HTTPSource {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPSource{cfg: cfg, client: client, logger: loggerOrDiscard(logger)}
}

func (s *HTTPSource) Describe() string {
	return fmt.Sprintf("api:%s?project_id=%s", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.ProjectID)
}

func (s *HTTPSource) endpoint() (string, error) {
	base, err := url.Parse(strings.TrimRight(s.cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid api url %q: %w", s.cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid api url %q: scheme and host are required", s.cfg.BaseURL)
	}
	base.Path += userStoryPath
	base.RawQuery = url.Values{"project_id": {s.cfg.ProjectID}}.Encode()
	return base.String(), nil
}

func (s *HTTPSource) Load(ctx context.Context) ([]domain.Issue, error) {
	endpoint, err := s.endpoint()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching issues: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading issue response: %w", err)
	}
	s.logger.DebugContext(ctx, "issue fetch",
		"url", endpoint, "status", resp.StatusCode, "bytes", len(body), "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching issues: unexpected status %d: %s", resp.StatusCode, snippet(body))
	}

	batch, err := importer.ParseIssues(body, importer.FormatJSON)
	if err != nil {
		return nil, err
	}
	return convertBatch(ctx, s.logger, s.Describe(), batch), nil
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
