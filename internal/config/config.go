package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Seed      SeedConfig      `yaml:"seed"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" envconfig:"LOG_FORMAT"` // "json" or "text"
}

// SeedConfig controls the sample data loaded at startup
type SeedConfig struct {
	Enabled         bool   `yaml:"enabled" envconfig:"SEED_ENABLED"`
	StartingCredits string `yaml:"starting_credits" envconfig:"SEED_STARTING_CREDITS"`
}

// SchedulerConfig controls the optional cron-driven day advance. When
// disabled the clock only moves on explicit "advance day" input.
type SchedulerConfig struct {
	Enabled     bool   `yaml:"enabled" envconfig:"SCHEDULER_ENABLED"`
	AutoAdvance string `yaml:"auto_advance" envconfig:"SCHEDULER_AUTO_ADVANCE"` // cron spec with seconds
	DaysPerTick int    `yaml:"days_per_tick" envconfig:"SCHEDULER_DAYS_PER_TICK"`
}

// Load reads configuration from a YAML file, then applies environment
// variable overrides and validates the result.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := envconfig.Process("stufflending", &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Log:  LogConfig{Level: "info", Format: "text"},
		Seed: SeedConfig{Enabled: true, StartingCredits: "100"},
		Scheduler: SchedulerConfig{
			Enabled:     false,
			AutoAdvance: "0 * * * * *",
			DaysPerTick: 1,
		},
	}
}

// Validate checks that the configuration is complete and consistent
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Seed.StartingCredits != "" {
		credits, err := decimal.NewFromString(c.Seed.StartingCredits)
		if err != nil {
			return fmt.Errorf("seed.starting_credits is not a number: %w", err)
		}
		if credits.IsNegative() {
			return fmt.Errorf("seed.starting_credits cannot be negative, got %s", credits.String())
		}
	}

	if c.Scheduler.Enabled {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
		if _, err := parser.Parse(c.Scheduler.AutoAdvance); err != nil {
			return fmt.Errorf("scheduler.auto_advance is not a valid cron spec: %w", err)
		}
		if c.Scheduler.DaysPerTick <= 0 {
			return fmt.Errorf("scheduler.days_per_tick must be positive, got %d", c.Scheduler.DaysPerTick)
		}
	}

	return nil
}

// StartingCredits returns the configured starting balance for new members,
// defaulting to 100.
func (c *Config) StartingCredits() decimal.Decimal {
	if c.Seed.StartingCredits == "" {
		return decimal.NewFromInt(100)
	}
	credits, err := decimal.NewFromString(c.Seed.StartingCredits)
	if err != nil {
		return decimal.NewFromInt(100)
	}
	return credits
}
