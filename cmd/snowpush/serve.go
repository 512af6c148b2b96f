package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowpush/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snowpush SSH server",
	Long: `Start an SSH server that lets users pick a level, watch it being solved
and replay the solution.

Each SSH connection gets its own session with a level picker.
Solutions are stored per-server (all users share the same history).

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, generates a key in the XDG data directory

Examples:
  snowpush serve                           # Listen on :23235
  snowpush serve --ssh :2222               # Listen on port 2222
  snowpush serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := current.cfg
	if cmd.Flags().Changed("ssh") {
		cfg.SSH.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	hostKeyPath, err := cfg.HostKeyPath()
	if err != nil {
		fatal("%v", err)
	}

	store, err := current.openStore()
	if err != nil {
		current.logger.Warn("could not open solutions database", "error", err)
		// Continue without storage
		store = nil
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: hostKeyPath,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Levels:      current.loader,
		Runner:      current.newRunner(store),
		StepDelay:   cfg.Replay.StepDelay,
		Logger:      current.logger.WithPrefix("snowpush-ssh"),
	})
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting snowpush SSH server on %s\n", cfg.SSH.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := interruptContext(context.Background(), current.logger)
	defer stop()

	err = server.ListenAndServe(ctx)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fatal("server: %v", err)
	}
}
