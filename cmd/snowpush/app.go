package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snowpush/internal/config"
	"github.com/vovakirdan/snowpush/internal/snowball/levels"
	"github.com/vovakirdan/snowpush/internal/snowball/runner"
	"github.com/vovakirdan/snowpush/internal/storage"
)

// app holds what every command needs once flags are parsed.
type app struct {
	cfg    config.Config
	logger *log.Logger
	loader *levels.Loader
}

var current app

// setupApp loads the config, applies flag overrides and builds the logger.
func setupApp(cmd *cobra.Command) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("levels") {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snowpush",
		Level:           level,
	})

	loader := levels.Builtin()
	if cfg.Levels.Dir != "" {
		loader = levels.NewLoader(cfg.Levels.Dir)
	}

	current = app{cfg: cfg, logger: logger, loader: loader}
	logger.Debug("config loaded", "levels", loader.Root, "max_ball_size", cfg.Solver.MaxBallSize)
	return nil
}

// openStore opens the solutions database.
func (a *app) openStore() (*storage.Store, error) {
	path, err := a.cfg.DBPath()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening solutions database: %w", err)
	}
	return store, nil
}

// newRunner builds a runner; store may be nil.
func (a *app) newRunner(store *storage.Store) *runner.Runner {
	return &runner.Runner{
		MaxSize:       a.cfg.Solver.MaxBallSize,
		ProgressEvery: a.cfg.Solver.ProgressEvery,
		Store:         store,
		Logger:        a.logger,
	}
}

// terminalSize returns the stdout size, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// isTerminal reports whether stdout is attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// fatal prints the error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
