package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/remote"
	"github.com/vovakirdan/tui-2048/internal/spectate"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and spectator stream",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a board picker menu and
its own game engine. Scores are stored per server (all users share the
same leaderboard).

While a game runs, its events are streamed as JSON over websockets:
  GET /sessions              - live games
  GET /sessions/{id}/ws      - one game's events
  GET /results/ws            - finished games published over NATS

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  t2048 serve                           # SSH on :23234, HTTP from config
  t2048 serve --ssh :2222 --http :9000
  t2048 serve --http ""                 # No spectator stream

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Spectator HTTP address (default from config, empty string disables)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	if cmd.Flags().Changed("http") {
		cfg.Spectate.Addr = flagHTTPAddr
	}

	b, err := openBackend(cfg, os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer b.Close()
	logger := b.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *spectate.Hub
	httpErr := make(chan error, 1)

	if cfg.Spectate.Addr != "" {
		hub = spectate.NewHub(logger.WithPrefix("spectate"))
		go hub.Run(ctx)

		srv := spectate.NewServer(hub, logger.WithPrefix("http"))
		go func() {
			httpErr <- srv.ListenAndServe(ctx, cfg.Spectate.Addr)
		}()

		if conn := b.NATS(); conn != nil {
			sub, err := remote.SubscribeResults(conn, cfg.Sync.Subject, logger, hub.PublishResult)
			if err != nil {
				logger.Warn("results stream disabled", "error", err)
			} else {
				defer sub.Unsubscribe()
			}
		}
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(sshCfg, b, hub)
	if err != nil {
		b.Close()
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting 2048 SSH server on %s\n", sshCfg.Address)
	if hub != nil {
		fmt.Printf("Spectator stream on %s\n", cfg.Spectate.Addr)
	}
	fmt.Println("Press Ctrl+C to stop")

	sshErr := make(chan error, 1)
	go func() {
		sshErr <- server.ListenAndServe(ctx)
	}()

	// The SSH server returns once ctx is done; an HTTP failure cancels it.
	select {
	case err = <-sshErr:
	case err = <-httpErr:
		stop()
		if sshShutdownErr := <-sshErr; err == nil {
			err = sshShutdownErr
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		b.Close()
		exitf("server: %v", err)
	}
}
