package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/backend"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/spectate"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Generated on first start; defaults to ~/.arcade/host_key
	IdleTimeout time.Duration // Idle connections are closed after this
	TickRate    int           // UI ticks per second of every session
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    defaultTickRate,
	}
}

// SSHServer gives every SSH connection its own menu and games.
// Games never share a controller; the hub only observes them.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	backend *backend.Backend
	hub     *spectate.Hub
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. hub may be nil to disable spectating.
func NewSSHServer(cfg SSHServerConfig, b *backend.Backend, hub *spectate.Hub) (*SSHServer, error) {
	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{
		config:  cfg,
		backend: b,
		hub:     hub,
		logger:  b.Logger().WithPrefix("ssh"),
	}

	// The last middleware runs first.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.logSession,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the host key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea program of one connection.
// activeterm has already rejected sessions without a PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.backend.Registry(), s.backend.Store(), cfg, sess.User(), s.attach(sess.User()))
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// attach opens a spectator session for every game the user starts.
func (s *SSHServer) attach(user string) AttachFunc {
	if s.hub == nil {
		return nil
	}
	return func(gameID string) (registry.Env, func()) {
		id := fmt.Sprintf("%s-%d", user, time.Now().UnixNano())
		s.hub.Open(id, user, gameID)
		s.logger.Debug("game started", "user", user, "variant", gameID, "session", id)
		return registry.Env{Listener: s.hub.Listener(id)}, func() {
			s.hub.Close(id)
		}
	}
}

func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("connected")
		next(sess)
		logger.Info("disconnected", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the server, waiting up to ten seconds for sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
