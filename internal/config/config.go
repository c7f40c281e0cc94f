// Package config loads runtime settings from defaults, an optional YAML file and the environment.
package config

import (
	"fmt"
	"slices"
	"time"
	// zones are validated here; embed the database so minimal images still resolve them
	_ "time/tzdata"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// Config holds runtime configuration for every command.
type Config struct {
	Provider string         `koanf:"provider"`
	Server   ServerConfig   `koanf:"server"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	MLBStats MLBStatsConfig `koanf:"mlbstats"`
	Database DatabaseConfig `koanf:"database"`
	Grading  GradingConfig  `koanf:"grading"`
	Audit    AuditConfig    `koanf:"audit"`
	Admin    AdminConfig    `koanf:"admin"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig controls the reporting API listener.
type ServerConfig struct {
	Port            string   `koanf:"port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string `koanf:"cors_origins"`
}

// MLBStatsConfig controls how we talk to the MLB stats API.
type MLBStatsConfig struct {
	BaseURL        string   `koanf:"base_url"`
	UserAgent      string   `koanf:"user_agent"`
	Timeout        Duration `koanf:"timeout"`
	MaxAttempts    int      `koanf:"max_attempts"`
	InitialBackoff Duration `koanf:"initial_backoff"`
	MinInterval    Duration `koanf:"min_interval"`
}

// DatabaseConfig selects the audit store.
type DatabaseConfig struct {
	Driver       string   `koanf:"driver"`
	DSN          string   `koanf:"dsn"`
	MaxOpenConns int      `koanf:"max_open_conns"`
	PingTimeout  Duration `koanf:"ping_timeout"`
}

// GradingConfig tunes which games are graded and how.
type GradingConfig struct {
	BadDataThresholdInches float64  `koanf:"bad_data_threshold_inches"`
	GameTypes              []string `koanf:"game_types"`
}

// AuditConfig controls batch runs and the scheduled audit in serve mode.
type AuditConfig struct {
	Workers  int      `koanf:"workers"`
	Schedule bool     `koanf:"schedule"`
	Interval Duration `koanf:"interval"`
	Timezone string   `koanf:"timezone"`
}

// AdminConfig guards the admin endpoints.
type AdminConfig struct {
	Token string `koanf:"token"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Provider: defaultProvider,
		Server: ServerConfig{
			Port:            defaultPort,
			ShutdownTimeout: defaultShutdownTimeout,
			CORSOrigins:     []string{"*"},
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  "umpire-auditor",
			OtlpInsecure: true,
		},
		MLBStats: MLBStatsConfig{
			Timeout:        defaultRequestTimeout,
			MaxAttempts:    defaultMaxAttempts,
			InitialBackoff: defaultInitialBackoff,
			MinInterval:    defaultMinInterval,
		},
		Database: DatabaseConfig{
			Driver:      defaultDriver,
			PingTimeout: 5 * time.Second,
		},
		Grading: GradingConfig{
			BadDataThresholdInches: defaultBadDataInches,
			GameTypes:              slices.Clone(defaultGameTypes),
		},
		Audit: AuditConfig{
			Workers:  defaultWorkers,
			Interval: defaultAuditInterval,
			Timezone: defaultTimezone,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate reports the first setting that cannot work, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Provider != ProviderMLBStats && c.Provider != ProviderFixture:
		return invalid("provider must be %q or %q, got %q", ProviderMLBStats, ProviderFixture, c.Provider)
	case c.Server.Port == "":
		return invalid("server.port must not be empty")
	case c.Metrics.Enabled && c.Metrics.Port == "":
		return invalid("metrics.port must not be empty when metrics are enabled")
	case c.MLBStats.MaxAttempts < 1:
		return invalid("mlbstats.max_attempts must be at least 1")
	case c.MLBStats.MinInterval < 0:
		return invalid("mlbstats.min_interval must not be negative")
	case !slices.Contains([]string{"memory", "postgres", "sqlite"}, c.Database.Driver):
		return invalid("database.driver %q is not supported", c.Database.Driver)
	case c.Database.Driver != "memory" && c.Database.DSN == "":
		return invalid("database.dsn is required for driver %q", c.Database.Driver)
	case c.Grading.BadDataThresholdInches <= 0:
		return invalid("grading.bad_data_threshold_inches must be positive")
	case len(c.Grading.GameTypes) == 0:
		return invalid("grading.game_types must list at least one type")
	case c.Audit.Workers < 1:
		return invalid("audit.workers must be at least 1")
	case c.Audit.Schedule && c.Audit.Interval <= 0:
		return invalid("audit.interval must be positive when the schedule is on")
	}
	if _, err := time.LoadLocation(c.Audit.Timezone); err != nil {
		return invalid("audit.timezone %q: %v", c.Audit.Timezone, err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
