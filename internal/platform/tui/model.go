package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/sandbox"
	"github.com/gridlab/pathlab/internal/storage"
)

// ExplorerModel is the Bubble Tea model for the interactive explorer.
type ExplorerModel struct {
	session    *sandbox.Session
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewExplorerModel creates a model for the given session. Completed
// solves are recorded to the store when one is provided.
func NewExplorerModel(session *sandbox.Session, store *storage.Store, cfg core.RuntimeConfig) ExplorerModel {
	if store != nil {
		session.OnSolve = func(rec sandbox.SolveRecord) {
			outcome := storage.OutcomeNoPath
			if rec.Found {
				outcome = storage.OutcomeFound
			}
			//nolint:errcheck // Best-effort save, exploring continues regardless
			store.SaveSolve(storage.SolveEntry{
				MazeID:     session.MazeID(),
				Solver:     rec.Solver,
				Outcome:    outcome,
				PathLen:    rec.PathLen,
				Expanded:   rec.Expanded,
				DurationMS: rec.Duration.Milliseconds(),
			})
		}
	}

	return ExplorerModel{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m ExplorerModel) Init() tea.Cmd {
	m.session.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ExplorerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.backToMenu = true
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m ExplorerModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Relayout; the session keeps its grid edits across resizes
	m.session.Resize(m.config)
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m ExplorerModel) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m ExplorerModel) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m ExplorerModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m ExplorerModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone explorer program for the given session.
func Run(session *sandbox.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewExplorerModel(session, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
