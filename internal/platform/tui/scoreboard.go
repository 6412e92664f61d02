package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardTabActive  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next board")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev board")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the finished games of one board variant at a time.
type ScoreboardModel struct {
	variants []t2048.Variant
	current  int
	store    *storage.Store

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	best   int

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first variant. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: t2048.Variants,
		store:    store,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	if m.width > 70 {
		dateWidth = 20
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Max tile", Width: 9},
		{Title: "Moves", Width: 7},
		{Title: "Played", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads history, stats and best for the current variant.
// Read errors leave the board empty.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.best = nil, nil, 0
	if m.store != nil && len(m.variants) > 0 {
		key := m.variants[m.current].Key
		if scores, err := m.store.TopScores(key, scoreboardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(key); err == nil {
			m.stats = stats
		}
		if best, err := m.store.Best(key); err == nil {
			m.best = best
		}
		if m.stats != nil {
			m.best = max(m.best, m.stats.HighScore)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxTile),
			strconv.Itoa(s.Steps),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) shift(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = (m.current + delta + n) % n
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.shift(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderSummary(), m.width))
	b.WriteString("\n")

	body := boardMutedStyle.Italic(true).Padding(1, 4).
		Render("No scores recorded yet.\nFinish a game to see it here.")
	if len(m.scores) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardPanelStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs lists the variants, or only the current one when they do not fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.variants) == 0 {
		return ""
	}
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = boardTabActive.Render(v.Name)
		} else {
			tabs[i] = boardTabStyle.Render(v.Name)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 && lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.variants[m.current].Name)
	}
	return line
}

func (m ScoreboardModel) renderSummary() string {
	parts := []string{fmt.Sprintf("Best: %d", m.best)}
	if m.stats != nil && m.stats.GamesCount > 0 {
		parts = append(parts,
			fmt.Sprintf("Games: %d", m.stats.GamesCount),
			fmt.Sprintf("Avg: %.0f", m.stats.AvgScore),
			fmt.Sprintf("Top tile: %d", m.stats.BestTile),
		)
	}
	return strings.Join(parts, "   ")
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
