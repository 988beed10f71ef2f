package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/mines"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type TimerConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type Config struct {
	Mode  string            `mapstructure:"mode"`
	Board mines.BoardParams `mapstructure:"board"`
	Timer TimerConfig       `mapstructure:"timer"`
	Log   LogConfig         `mapstructure:"log"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"board":            c.Board.Seed(),
		"timer_interval":   c.Timer.Interval.String(),
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

func (c Config) Validate() error {
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Timer.Interval <= 0 {
		return fmt.Errorf("timer interval must be positive, got %s", c.Timer.Interval)
	}
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}
