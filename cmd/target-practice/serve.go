package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
	"github.com/vovakirdan/target-practice/internal/platform/tui"
	"github.com/vovakirdan/target-practice/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets people play from their own terminal.

Each SSH connection plays its own game. All connections share the high
score file and the session history. Remote sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key from the config, generating it if missing

Examples:
  target-practice serve                           # Listen on the configured address
  target-practice serve --ssh :2222               # Listen on port 2222
  target-practice serve --host-key ./my_host_key  # Use specific host key

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle time before disconnecting (e.g. 10m)")
}

func runServe(cmd *cobra.Command, args []string) {
	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, s.Log.Level)

	if _, err := openHighScores(s.Storage.HighScoreFile); err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(s.Storage.Database)
	if err != nil {
		logger.Warn("could not open session history", "path", s.Storage.Database, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     s.Server.Address,
		HostKeyPath: s.Server.HostKey,
		IdleTimeout: s.Server.IdleTimeout,
		GameID:      targetpractice.GameID,
		World:       s.runtimeConfig(),
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Target Practice SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
