// Package config loads timeline settings from defaults, an optional YAML
// file, TIMELINE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// EnvPrefix prefixes every environment override, e.g. TIMELINE_SOURCE_FILE.
const EnvPrefix = "TIMELINE"

// Config holds all configuration options for the timeline CLI.
type Config struct {
	DBPath string       `mapstructure:"db_path"`
	Scope  string       `mapstructure:"scope"`
	Source SourceConfig `mapstructure:"source"`
	Zoom   ZoomConfig   `mapstructure:"zoom"`
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

// SourceConfig selects where issues come from. File wins over APIURL.
type SourceConfig struct {
	File      string        `mapstructure:"file"`
	APIURL    string        `mapstructure:"api_url"`
	ProjectID string        `mapstructure:"project_id"`
	Token     string        `mapstructure:"token"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"` // 0 disables caching
	Timeout   time.Duration `mapstructure:"timeout"`
}

// ZoomConfig holds the default zoom and the pixel day widths used by JSON and
// SVG output.
type ZoomConfig struct {
	Default         string `mapstructure:"default"`
	WeeklyDayWidth  int    `mapstructure:"weekly_day_width"`
	MonthlyDayWidth int    `mapstructure:"monthly_day_width"`
}

// RenderConfig holds terminal rendering options. Day widths are in cells.
type RenderConfig struct {
	WeeklyCells  int `mapstructure:"weekly_cells"`
	MonthlyCells int `mapstructure:"monthly_cells"`
	SidebarWidth int `mapstructure:"sidebar_width"`
}

type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DBPath: filepath.Join("~", ".timeline", "timeline.db"),
		Scope:  "default",
		Source: SourceConfig{
			CacheTTL: time.Minute,
			Timeout:  15 * time.Second,
		},
		Zoom: ZoomConfig{
			Default:         string(timeline.ZoomWeekly),
			WeeklyDayWidth:  40,
			MonthlyDayWidth: 12,
		},
		Render: RenderConfig{
			WeeklyCells:  3,
			MonthlyCells: 1,
			SidebarWidth: 28,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// NewViper returns a viper instance with defaults and environment binding
// applied. Every key has a default so AutomaticEnv can see it on Unmarshal.
func NewViper() *viper.Viper {
	d := Defaults()
	v := viper.New()
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("scope", d.Scope)
	v.SetDefault("source.file", d.Source.File)
	v.SetDefault("source.api_url", d.Source.APIURL)
	v.SetDefault("source.project_id", d.Source.ProjectID)
	v.SetDefault("source.token", d.Source.Token)
	v.SetDefault("source.cache_ttl", d.Source.CacheTTL)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("zoom.default", d.Zoom.Default)
	v.SetDefault("zoom.weekly_day_width", d.Zoom.WeeklyDayWidth)
	v.SetDefault("zoom.monthly_day_width", d.Zoom.MonthlyDayWidth)
	v.SetDefault("render.weekly_cells", d.Render.WeeklyCells)
	v.SetDefault("render.monthly_cells", d.Render.MonthlyCells)
	v.SetDefault("render.sidebar_width", d.Render.SidebarWidth)
	v.SetDefault("log.enabled", d.Log.Enabled)
	v.SetDefault("log.level", d.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and decodes v into a Config.
//
// Lookup order when cfgFile is empty:
//  1. ./.timeline.yaml
//  2. ~/.config/timeline/config.yaml
//
// A missing file is not an error; an explicit cfgFile that cannot be read is.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(".timeline.yaml"):
		v.SetConfigFile(".timeline.yaml")
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "timeline"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Scope) == "" {
		errs = append(errs, fmt.Errorf("scope must not be empty"))
	}
	if !timeline.ZoomLevel(c.Zoom.Default).IsValid() {
		errs = append(errs, fmt.Errorf("zoom.default: unknown zoom level %q", c.Zoom.Default))
	}
	if c.Zoom.WeeklyDayWidth < 1 || c.Zoom.MonthlyDayWidth < 1 {
		errs = append(errs, fmt.Errorf("zoom day widths must be positive"))
	}
	if c.Render.WeeklyCells < 1 || c.Render.MonthlyCells < 1 {
		errs = append(errs, fmt.Errorf("render cell widths must be positive"))
	}
	if c.Source.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("source.cache_ttl must not be negative"))
	}
	if c.Source.APIURL != "" && c.Source.File == "" && c.Source.ProjectID == "" {
		errs = append(errs, fmt.Errorf("source.project_id is required with source.api_url"))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DefaultZoom returns the configured default zoom level.
func (c *Config) DefaultZoom() timeline.ZoomLevel {
	return timeline.ZoomLevel(c.Zoom.Default)
}

// Presets returns the pixel day widths for JSON and SVG output.
func (c *Config) Presets() timeline.ZoomPresets {
	return timeline.ZoomPresets{
		timeline.ZoomWeekly:  c.Zoom.WeeklyDayWidth,
		timeline.ZoomMonthly: c.Zoom.MonthlyDayWidth,
	}
}

// TerminalPresets returns the day widths, in cells, for terminal rendering.
func (c *Config) TerminalPresets() timeline.ZoomPresets {
	return timeline.ZoomPresets{
		timeline.ZoomWeekly:  c.Render.WeeklyCells,
		timeline.ZoomMonthly: c.Render.MonthlyCells,
	}
}

// HasSource reports whether any issue source is configured.
func (c *Config) HasSource() bool {
	return c.Source.File != "" || c.Source.APIURL != ""
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", s)
	}
	return level, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
