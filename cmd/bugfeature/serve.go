package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/platform/tui"
)

const defaultSSHAddr = ":23234"

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bug to Feature SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Runs are recorded under the SSH
user name and all users share the same leaderboard. Sessions are silent.

Host key handling:
  - If --host-key (or BUGFEATURE_HOST_KEY) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.bugfeature/host_key

Examples:
  bugfeature serve                           # Listen on :23234 with auto-generated key
  bugfeature serve --ssh :2222               # Listen on port 2222
  bugfeature serve --host-key ./my_host_key  # Use specific host key
  bugfeature serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaultSSHAddr, "SSH server address (env "+config.EnvSSHAddr+")")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (env "+config.EnvHostKey+", auto-generated if not set)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	if !cmd.Flags().Changed("ssh") {
		cfg.Address = config.GetEnv(config.EnvSSHAddr, defaultSSHAddr)
	}
	cfg.HostKeyPath = flagHostKey
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = config.GetEnv(config.EnvHostKey, "")
	}
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = gameID

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Bug to Feature SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
