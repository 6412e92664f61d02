package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem represents a selectable board variant.
type MenuItem struct {
	GameID string
	Title  string
	Detail string
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu over the registered games.
func NewMenuModel(reg *registry.Registry, cfg core.RuntimeConfig) MenuModel {
	games := reg.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if v, ok := t2048.FindVariant(g.ID); ok {
			item.Detail = fmt.Sprintf("%dx%d, target %d", v.Size, v.Size, v.Target)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   NewKeyMapper(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Selecting a board or the scoreboard only
// records the choice; the owner of the menu acts on it.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(0, m.cursor-1)
		case MenuActionDown:
			m.cursor = min(len(m.items)-1, m.cursor+1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
			}
		case MenuActionScoreboard:
			m.openScoreboard = true
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var list strings.Builder
	for i, item := range m.items {
		prefix := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			prefix = "> "
			style = menuCursorStyle
		}
		list.WriteString(style.Render(fmt.Sprintf("%s%-14s", prefix, item.Title)))
		list.WriteString(menuDetailStyle.Render(item.Detail))
		list.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.TrimSuffix(list.String(), "\n"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render(m.help.ShortHelpView(MenuHelp())), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("in game: "+m.help.ShortHelpView(GameHelp())), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers a block of text within width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
