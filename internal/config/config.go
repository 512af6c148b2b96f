// Package config provides YAML-based configuration loading for snowpush.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full application configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Replay  ReplayConfig  `yaml:"replay"`
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// SolverConfig tunes the search.
type SolverConfig struct {
	MaxBallSize   int `yaml:"max_ball_size"`  // Balls stop doubling at this size
	ProgressEvery int `yaml:"progress_every"` // Log every N expanded states; 0 disables
}

// ReplayConfig controls solution playback.
type ReplayConfig struct {
	StepDelay time.Duration `yaml:"step_delay"`
}

// StorageConfig locates the solutions database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty means the XDG data file
}

// LevelsConfig locates level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Empty means the built-in levels
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means the XDG data file
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// InvalidConfig reports a configuration value that cannot be used.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}

// Validate checks values that would otherwise fail later in surprising ways.
func (c *Config) Validate() error {
	if c.Solver.MaxBallSize < 1 {
		return &InvalidConfig{"solver.max_ball_size", "must be at least 1"}
	}
	if c.Solver.ProgressEvery < 0 {
		return &InvalidConfig{"solver.progress_every", "must not be negative"}
	}
	if c.Replay.StepDelay < 0 {
		return &InvalidConfig{"replay.step_delay", "must not be negative"}
	}
	if c.SSH.IdleTimeout < 0 {
		return &InvalidConfig{"ssh.idle_timeout", "must not be negative"}
	}
	if _, err := c.LogLevel(); err != nil {
		return &InvalidConfig{"log.level", err.Error()}
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c *Config) LogLevel() (log.Level, error) {
	if strings.TrimSpace(c.Log.Level) == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}
