package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appDir       = "snowpush"
	userCfgFile  = appDir + "/config.yaml"
	localCfgFile = "configs/snowpush.yaml"
	dbFile       = appDir + "/solutions.db"
	hostKeyFile  = appDir + "/host_key"
)

// Load loads the configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/snowpush/config.yaml -> ./configs/snowpush.yaml -> embedded default
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		if err := readFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(userCfgFile); err == nil {
		if err := readFile(userCfgPath, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = Default()
	}

	// Try local configs directory
	if err := readFile(localCfgFile, &cfg); err == nil {
		return cfg, cfg.Validate()
	}
	cfg = Default()

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// DBPath returns the solutions database path, creating the XDG data
// directory when the default is used.
func (c *Config) DBPath() (string, error) {
	if c.Storage.DBPath != "" {
		return expandHome(c.Storage.DBPath)
	}
	path, err := xdg.DataFile(dbFile)
	if err != nil {
		return "", fmt.Errorf("resolving database path: %w", err)
	}
	return path, nil
}

// HostKeyPath returns the SSH host key path, creating the XDG data
// directory when the default is used.
func (c *Config) HostKeyPath() (string, error) {
	if c.SSH.HostKeyPath != "" {
		return expandHome(c.SSH.HostKeyPath)
	}
	path, err := xdg.DataFile(hostKeyFile)
	if err != nil {
		return "", fmt.Errorf("resolving host key path: %w", err)
	}
	return path, nil
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) (string, error) {
	if len(path) < 2 || path[:2] != "~/" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, path[2:]), nil
}
