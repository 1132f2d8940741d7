package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Scope)
	assert.Equal(t, timeline.ZoomWeekly, cfg.DefaultZoom())
	assert.Equal(t, timeline.ZoomPresets{timeline.ZoomWeekly: 40, timeline.ZoomMonthly: 12}, cfg.Presets())
	assert.Equal(t, timeline.ZoomPresets{timeline.ZoomWeekly: 3, timeline.ZoomMonthly: 1}, cfg.TerminalPresets())
	assert.Equal(t, time.Minute, cfg.Source.CacheTTL)
	assert.False(t, cfg.HasSource())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
scope: team-a
source:
  api_url: https://tracker.example.com/api
  project_id: "12"
  cache_ttl: 30s
zoom:
  default: monthly
  monthly_day_width: 8
log:
  enabled: true
  level: debug
`)
	t.Setenv("TIMELINE_SOURCE_TOKEN", "tok")
	t.Setenv("TIMELINE_RENDER_WEEKLY_CELLS", "5")

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "team-a", cfg.Scope)
	assert.Equal(t, "https://tracker.example.com/api", cfg.Source.APIURL)
	assert.Equal(t, "12", cfg.Source.ProjectID)
	assert.Equal(t, "tok", cfg.Source.Token)
	assert.Equal(t, 30*time.Second, cfg.Source.CacheTTL)
	assert.Equal(t, timeline.ZoomMonthly, cfg.DefaultZoom())
	assert.Equal(t, 8, cfg.Presets()[timeline.ZoomMonthly])
	assert.Equal(t, 40, cfg.Presets()[timeline.ZoomWeekly], "unset keys keep defaults")
	assert.Equal(t, 5, cfg.Render.WeeklyCells)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.True(t, cfg.HasSource())
}

func TestLoad_DotfileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".timeline.yaml"), []byte("scope: local\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Scope)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Scope = " "
	cfg.Zoom.Default = "daily"
	cfg.Zoom.WeeklyDayWidth = 0
	cfg.Render.MonthlyCells = 0
	cfg.Source.CacheTTL = -time.Second
	cfg.Source.APIURL = "https://x"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"scope must not be empty",
		`unknown zoom level "daily"`,
		"zoom day widths must be positive",
		"render cell widths must be positive",
		"cache_ttl must not be negative",
		"project_id is required",
		`unknown level "loud"`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}
