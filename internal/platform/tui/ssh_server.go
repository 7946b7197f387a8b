package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/gridlab/pathlab/internal/config"
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/maze"
	"github.com/gridlab/pathlab/internal/sandbox"
	"github.com/gridlab/pathlab/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pathlab/host_key.
	HostKeyPath string

	// DBPath is the path to the solve history database.
	DBPath string

	// MazeDir is an optional directory of maze files.
	MazeDir string

	// ConfigPath is an optional sandbox config file.
	ConfigPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.pathlab/history.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the explorer.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	loader  *maze.Loader
	sandCfg config.SandboxConfig
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathlab-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage
	}

	sandCfg, err := config.LoadSandbox(cfg.ConfigPath)
	if err != nil {
		logger.Warn("could not load sandbox config, using defaults", "error", err)
		sandCfg = config.DefaultSandboxConfig()
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		loader:  maze.NewLoader(cfg.MazeDir),
		sandCfg: sandCfg,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pathlab", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 30,
	}

	mazes, err := s.loader.LoadAll()
	if err != nil {
		s.logger.Warn("could not load mazes", "error", err)
		mazes = maze.Builtin()
	}

	model := NewSessionModel(s.store, mazes, s.sandCfg, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
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

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen tracks which screen the session flow is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenExplorer
	screenHistory
)

// SessionModel manages the full session flow: menu -> explorer -> menu,
// with the solve history reachable from the menu. This is the top-level
// model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	mazes    []maze.Maze
	sandCfg  config.SandboxConfig
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	explorer *ExplorerModel
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, mazes []maze.Maze, sandCfg config.SandboxConfig, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:   store,
		mazes:   mazes,
		sandCfg: sandCfg,
		config:  cfg,
		screen:  screenMenu,
		menu:    NewMenuModel(mazes, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenExplorer:
		return m.updateExplorer(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when showing the maze picker.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		history := NewHistoryModel(m.store, m.mazes, m.config.ScreenW, m.config.ScreenH)
		m.history = &history
		m.screen = screenHistory
		m.menu = NewMenuModel(m.mazes, m.config)
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()

		var picked *maze.Maze
		for i := range m.mazes {
			if m.mazes[i].ID == selected.MazeID {
				picked = &m.mazes[i]
				break
			}
		}
		if picked == nil {
			return m, nil
		}

		session, err := sandbox.New(*picked, m.sandCfg)
		if err != nil {
			return m, nil
		}

		explorer := NewExplorerModel(session, m.store, m.config)
		m.explorer = &explorer
		m.screen = screenExplorer
		return m, m.explorer.Init()
	}

	return m, cmd
}

// updateExplorer handles updates when in the explorer.
func (m SessionModel) updateExplorer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.explorer.Update(msg)
	if explorerModel, ok := newModel.(ExplorerModel); ok {
		m.explorer = &explorerModel
	}

	if m.explorer.BackToMenu() {
		m.screen = screenMenu
		m.explorer = nil
		m.menu = NewMenuModel(m.mazes, m.config)
		return m, m.menu.Init()
	}

	if m.explorer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates when showing the solve history.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = &historyModel
	}

	if m.history.IsGoingBack() {
		m.screen = screenMenu
		m.history = nil
		m.menu = NewMenuModel(m.mazes, m.config)
		return m, m.menu.Init()
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenExplorer:
		if m.explorer != nil {
			return m.explorer.View()
		}
	case screenHistory:
		if m.history != nil {
			return m.history.View()
		}
	}

	return m.menu.View()
}
