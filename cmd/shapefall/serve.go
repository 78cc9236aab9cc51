package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapefall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shapefall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session. Scores are stored per server
(all users share the same high score and score board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.shapefall/host_key

Examples:
  shapefall serve                           # Listen on :23234 with auto-generated key
  shapefall serve --ssh :2222               # Listen on port 2222
  shapefall serve --host-key ./my_host_key  # Use specific host key
  shapefall serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addShooterFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	shooterCfg, err := loadShooterConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Shooter = shooterCfg
	cfg.Runtime = runtimeConfig()

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("shapefall-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("server configured", "address", server.Addr(), "db", cfg.DBPath)
	fmt.Printf("Starting shapefall SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
