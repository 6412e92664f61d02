package tui

import (
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, v := range t2048.Variants {
		reg.Register(v.ID, v.Name, func(env registry.Env) (registry.Game, error) {
			g, err := t2048.New(t2048.Options{Variant: v, Listener: env.Listener, Logger: log.New(io.Discard)})
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
	return reg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestModelPausesOnTick(t *testing.T) {
	game, err := t2048.New(t2048.Options{Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(game, testRuntime())
	m.Init()

	next, _ := m.Update(keyMsg("p"))
	m = next.(Model)
	next, cmd := m.Update(TickMsg{Gen: m.gen})
	m = next.(Model)

	if !m.State().Paused {
		t.Error("game should be paused after P and a tick")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the pause overlay")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game, err := t2048.New(t2048.Options{Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(game, testRuntime())
	m.Init()

	_, cmd := m.Update(TickMsg{Gen: m.gen + 1})
	if cmd != nil {
		t.Error("a tick from another loop must not schedule ticks")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game, err := t2048.New(t2048.Options{Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(game, testRuntime())
	m.Init()
	before := game.Controller().Session().ID

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if got := game.Controller().Session().ID; got != before {
		t.Error("resize must not start a new game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	var attached []string
	detached := 0
	attach := func(gameID string) (registry.Env, func()) {
		attached = append(attached, gameID)
		return registry.Env{}, func() { detached++ }
	}

	m := NewSessionModel(testRegistry(t), nil, testRuntime(), "ada", attach)

	m, _ = sendSession(t, m, keyMsg("down"))
	m, cmd := sendSession(t, m, keyMsg("enter"))
	if !m.InGame() {
		t.Fatal("enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}
	if len(attached) != 1 || attached[0] != "mini" {
		t.Errorf("attached = %v, want [mini]", attached)
	}
	if !strings.Contains(m.View(), "Mini 3x3") {
		t.Error("game view should show the variant title")
	}

	m, _ = sendSession(t, m, keyMsg("b"))
	if m.InGame() {
		t.Fatal("B should return to the menu")
	}
	if detached != 1 {
		t.Errorf("detached %d times, want 1", detached)
	}
	if !strings.Contains(m.View(), "Select a board") {
		t.Error("menu should be shown after leaving the game")
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	m := NewSessionModel(testRegistry(t), nil, testRuntime(), "ada", nil)

	m, _ = sendSession(t, m, keyMsg("tab"))
	if m.scores == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("scoreboard without a store should be empty")
	}

	m, _ = sendSession(t, m, keyMsg("esc"))
	if m.scores != nil {
		t.Fatal("esc should close the scoreboard")
	}

	m, cmd := sendSession(t, m, keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testRegistry(t), testRuntime())
	if len(m.items) != len(t2048.Variants) {
		t.Fatalf("menu has %d items, want %d", len(m.items), len(t2048.Variants))
	}
	view := m.View()
	for _, v := range t2048.Variants {
		if !strings.Contains(view, v.Name) {
			t.Errorf("menu view missing %q", v.Name)
		}
	}
	details := make(map[string]string, len(m.items))
	for _, it := range m.items {
		details[it.GameID] = it.Detail
	}
	for _, v := range t2048.Variants {
		want := fmt.Sprintf("%dx%d, target %d", v.Size, v.Size, v.Target)
		if got := details[v.ID]; got != want {
			t.Errorf("%s detail = %q, want %q", v.Name, got, want)
		}
	}
}
