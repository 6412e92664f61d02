package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Model runs one game inside a Bubble Tea program.
//
// Keys are collected into an input frame and handed to the game on the next
// tick, so a burst of key presses between ticks is applied in order.
// Scores are persisted by the game's own backends.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   *KeyMapper
	frame  core.InputFrame
	state  core.GameState
	gen    uint64 // Tick loop owned by this model

	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game. A zero seed is replaced by the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
		gen:    tickGen.Add(1),
	}
}

// Init implements tea.Model. It starts the game and its tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			//nolint:errcheck // Screenshots are best effort
			m.saveScreenshot()
			return m, nil
		}
		if m.keys.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.frame.Has(core.ActionBack) {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)

	case TickMsg:
		// A tick from an earlier game's loop must not drive this one.
		if msg.Gen != m.gen || m.backToMenu || m.quitting {
			return m, nil
		}
		m.state = m.game.Step(m.frame).State
		m.frame.Clear()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	return m, nil
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the player quits or backs out.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)
	model.standalone = true

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
