package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// AttachFunc is called when a game starts. It returns the game's environment
// and a function called once the game is left.
type AttachFunc func(gameID string) (registry.Env, func())

// SessionModel manages the full flow of one player: menu -> game -> menu,
// with the scoreboard reachable from the menu.
type SessionModel struct {
	reg      *registry.Registry
	store    *storage.Store
	config   core.RuntimeConfig
	player   string
	attach   AttachFunc
	detach   func()
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model. attach may be nil.
func NewSessionModel(reg *registry.Registry, store *storage.Store, cfg core.RuntimeConfig, player string, attach AttachFunc) SessionModel {
	return SessionModel{
		reg:    reg,
		store:  store,
		config: cfg,
		player: player,
		attach: attach,
		menu:   NewMenuModel(reg, cfg),
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

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.scores != nil:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		scores := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		return m, scores.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}

	return m, cmd
}

// startGame creates the selected game and hands control to it.
func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	env := registry.Env{Player: m.player}
	detach := func() {}
	if m.attach != nil {
		env, detach = m.attach(gameID)
		env.Player = m.player
	}

	game, err := m.reg.Create(gameID, env)
	if err != nil {
		// The menu only lists registered games; stay in the menu.
		detach()
		m.menu = NewMenuModel(m.reg, m.config)
		return m, nil
	}

	gameModel := NewModel(game, m.config)
	m.game = &gameModel
	m.detach = detach
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	switch {
	case m.game.IsQuitting():
		m.leaveGame()
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.leaveGame()
		m.menu = NewMenuModel(m.reg, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) leaveGame() {
	if m.detach != nil {
		m.detach()
		m.detach = nil
	}
	m.game = nil
}

// updateScores handles updates while the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scores.IsGoingBack():
		m.scores = nil
		m.menu = NewMenuModel(m.reg, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.scores != nil:
		return m.scores.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunSession runs menu, games and scoreboard in one local program.
func RunSession(reg *registry.Registry, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewSessionModel(reg, store, cfg, player, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
