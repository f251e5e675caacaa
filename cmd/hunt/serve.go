package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-hunt/internal/platform/tui"
	"github.com/vovakirdan/monster-hunt/internal/platform/web"
	"github.com/vovakirdan/monster-hunt/internal/storage"
)

// shutdownTimeout bounds graceful shutdown of both servers.
const shutdownTimeout = 10 * time.Second

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and the HTTP leaderboard",
	Long: `Start an SSH server that allows users to connect and play, plus a
read-only HTTP JSON API over the shared scores database.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hunt/host_key

HTTP endpoints:
  GET /api/games
  GET /api/games/{id}/scores?limit=N
  GET /api/games/{id}/stats
  GET /api/games/{id}/sessions?limit=N
  GET /api/players/{name}/sessions?limit=N
  GET /api/sessions/recent?limit=N
  GET /api/sessions/{id}
  GET /healthz

Examples:
  hunt serve                           # SSH on :23234, HTTP on :8080
  hunt serve --ssh :2222 --http ""     # SSH only
  hunt serve --host-key ./my_host_key  # Use specific host key
  hunt serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP API address (empty disables it)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "hunt")
	if err != nil {
		return err
	}

	if err := configureGames(flagDifficulty, logger.WithPrefix("game")); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}
	sshServer, err := tui.NewSSHServer(sshCfg, store, logger.WithPrefix("ssh"))
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	var httpServer *web.Server
	if flagHTTPAddr != "" {
		httpCfg := web.DefaultConfig()
		httpCfg.Address = flagHTTPAddr
		httpServer = web.NewServer(httpCfg, store, logger.WithPrefix("http"))
	}

	errs := make(chan error, 2)
	go func() { errs <- sshServer.ListenAndServe() }()
	if httpServer != nil {
		go func() { errs <- httpServer.ListenAndServe() }()
	}

	logger.Info("serving", "ssh", sshCfg.Address, "http", flagHTTPAddr)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(sshCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var serveErr error
	select {
	case s := <-sig:
		logger.Info("shutting down", "signal", s)
	case serveErr = <-errs:
		logger.Error("server stopped", "error", serveErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := sshServer.Shutdown(ctx); err != nil {
		logger.Warn("SSH shutdown", "error", err)
	}
	if httpServer != nil {
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Warn("HTTP shutdown", "error", err)
		}
	}
	return serveErr
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
