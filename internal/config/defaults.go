package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snowpush.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			MaxBallSize:   4,
			ProgressEvery: 100000,
		},
		Replay: ReplayConfig{
			StepDelay: 400 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
