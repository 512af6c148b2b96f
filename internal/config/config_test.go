package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// isolate points XDG lookups and the working directory at empty temp dirs.
func isolate(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(configHome, "none"))
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(t.TempDir())
	return configHome, dataHome
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
solver:
  max_ball_size: 8
replay:
  step_delay: 1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Solver.MaxBallSize)
	require.Equal(t, time.Second, cfg.Replay.StepDelay)
	// Untouched keys keep their defaults
	require.Equal(t, Default().Solver.ProgressEvery, cfg.Solver.ProgressEvery)
	require.Equal(t, Default().SSH, cfg.SSH)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "solver: [")
	_, err = Load(bad)
	require.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "solver:\n  max_ball_size: 0\n")
	_, err = Load(invalid)
	var ic *InvalidConfig
	require.ErrorAs(t, err, &ic)
	require.Equal(t, "solver.max_ball_size", ic.Field)
}

func TestLoadSearchOrder(t *testing.T) {
	configHome, _ := isolate(t)

	writeFile(t, localCfgFile, "log:\n  level: debug\n")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level, "local config should be used")

	writeFile(t, filepath.Join(configHome, userCfgFile), "log:\n  level: warn\n")
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level, "user config should win over local")
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	configHome, _ := isolate(t)

	writeFile(t, filepath.Join(configHome, userCfgFile), "log: [")
	writeFile(t, localCfgFile, "levels:\n  dir: ./levels\n")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "./levels", cfg.Levels.Dir)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"defaults", func(*Config) {}, ""},
		{"max size", func(c *Config) { c.Solver.MaxBallSize = 0 }, "solver.max_ball_size"},
		{"progress", func(c *Config) { c.Solver.ProgressEvery = -1 }, "solver.progress_every"},
		{"step delay", func(c *Config) { c.Replay.StepDelay = -time.Second }, "replay.step_delay"},
		{"idle timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Second }, "ssh.idle_timeout"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.field == "" {
				require.NoError(t, err)
				return
			}
			var ic *InvalidConfig
			require.ErrorAs(t, err, &ic)
			require.Equal(t, tc.field, ic.Field)
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = ""
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, log.InfoLevel, lvl)

	cfg.Log.Level = "debug"
	lvl, err = cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, lvl)
}

func TestDataPaths(t *testing.T) {
	_, dataHome := isolate(t)
	cfg := Default()

	db, err := cfg.DBPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataHome, "snowpush", "solutions.db"), db)

	key, err := cfg.HostKeyPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataHome, "snowpush", "host_key"), key)

	cfg.Storage.DBPath = "/tmp/x.db"
	db, err = cfg.DBPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/x.db", db)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cfg.SSH.HostKeyPath = "~/keys/snow"
	key, err = cfg.HostKeyPath()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, home))
	require.Equal(t, filepath.Join(home, "keys", "snow"), key)
}
