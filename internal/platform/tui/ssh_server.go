package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tumble/internal/config"
	"github.com/vovakirdan/tui-tumble/internal/core"
	"github.com/vovakirdan/tui-tumble/internal/games/tumble"
	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
	"github.com/vovakirdan/tui-tumble/internal/metrics"
	"github.com/vovakirdan/tui-tumble/internal/registry"
	"github.com/vovakirdan/tui-tumble/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated at ~/.tumble/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MetricsAddress serves Prometheus metrics when non-empty.
	MetricsAddress string

	// Game is handed to every session's game.
	Game config.TumbleConfig

	// Logger defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tumble/scores.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultTumbleConfig(),
	}
}

// SSHServer serves tumble to SSH clients through Wish.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	metrics *metrics.Metrics
	logger  *log.Logger
	stop    context.CancelFunc
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tumble-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Sessions still play; runs are not saved.
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}
	if cfg.MetricsAddress != "" {
		srv.metrics = metrics.New()
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = config.Path("host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// remoteSession is the per-connection state shared by the middleware and
// the Bubble Tea handler.
type remoteSession struct {
	id      string
	logger  *log.Logger
	metrics *metrics.SessionListener // nil when metrics are off

	mu   sync.Mutex
	game registry.Game
}

type remoteSessionKey struct{}

// setGame replaces the session's game, flushing an abandoned run.
func (rs *remoteSession) setGame(g registry.Game) {
	rs.mu.Lock()
	prev := rs.game
	rs.game = g
	rs.mu.Unlock()

	if rs.metrics != nil {
		rs.metrics.Abandon(unfinishedMoves(prev))
	}
}

func (rs *remoteSession) end() {
	if rs.metrics == nil {
		return
	}
	rs.mu.Lock()
	g := rs.game
	rs.mu.Unlock()
	rs.metrics.End(unfinishedMoves(g))
}

func unfinishedMoves(g registry.Game) int {
	if g == nil {
		return 0
	}
	if st := g.State(); !st.GameOver {
		return st.Score
	}
	return 0
}

// newRemoteSession assigns a session ID and registers metrics.
func (s *SSHServer) newRemoteSession(user string) *remoteSession {
	id := uuid.NewString()
	rs := &remoteSession{
		id:     id,
		logger: s.logger.With("session", id, "user", user),
	}
	if s.metrics != nil {
		rs.metrics = s.metrics.StartSession()
	}
	return rs
}

// gameFactory creates games for one connection. bell receives the
// terminal bell of the sound cues.
func (s *SSHServer) gameFactory(rs *remoteSession, bell io.Writer) GameFactory {
	// Sound files would play on the server, so remote players only get the bell.
	audio := s.config.Game.Audio
	audio.Player = ""

	listeners := tumblecore.Listeners{
		NewLogListener(rs.logger),
		NewNotifier(audio, "", bell, rs.logger),
	}
	if rs.metrics != nil {
		listeners = append(listeners, rs.metrics)
	}

	return func(level int) registry.Game {
		g := tumble.New(tumble.Settings{
			Config:     s.config.Game,
			StartLevel: level,
			Listener:   listeners,
		})
		rs.setGame(g)
		return g
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rs, ok := sshSession.Context().Value(remoteSessionKey{}).(*remoteSession)
	if !ok {
		rs = s.newRemoteSession(sshSession.User())
	}

	model := NewSessionModel(SessionOptions{
		Store:   s.store,
		Logger:  rs.logger,
		Palette: NewPalette(bubbletea.MakeRenderer(sshSession)),
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.Game.Animation.TickRate,
		},
		NewGame: s.gameFactory(rs, sshSession),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionMiddleware sets up per-connection state and logs its lifetime.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		rs := s.newRemoteSession(sshSession.User())
		sshSession.Context().SetValue(remoteSessionKey{}, rs)

		rs.logger.Info("session started", "remote", sshSession.RemoteAddr().String())
		next(sshSession)
		rs.end()
		rs.logger.Info("session ended", "remote", sshSession.RemoteAddr().String())
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, cancel := context.WithCancel(context.Background())
	s.stop = cancel
	if s.metrics != nil {
		s.logger.Info("serving metrics", "address", s.config.MetricsAddress)
		go func() {
			if err := s.metrics.Serve(ctx, s.config.MetricsAddress); err != nil {
				s.logger.Error("metrics server error", "error", err)
			}
		}()
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.stop != nil {
		s.stop()
	}
	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close runs database", "error", err)
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
