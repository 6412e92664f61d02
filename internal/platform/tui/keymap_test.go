package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"k", runeKey('k'), core.ActionUp, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"back", runeKey('b'), core.ActionBack, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(runeKey('w'), &frame)
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should be a quit request")
	}

	dirs := frame.Directions()
	if len(dirs) != 2 || dirs[0] != core.ActionLeft || dirs[1] != core.ActionUp {
		t.Errorf("Directions() = %v, want [Left Up]", dirs)
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be queued as a game action")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	helpKeys := func(bs []key.Binding) []string {
		out := make([]string, len(bs))
		for i, b := range bs {
			out[i] = b.Help().Key
		}
		return out
	}

	game := helpKeys(GameHelp())
	if len(game) != 8 || game[len(game)-1] != "q" {
		t.Errorf("GameHelp() keys = %v, want 7 bound actions and quit", game)
	}
	for _, k := range game {
		if k == "" {
			t.Errorf("GameHelp() includes a binding without help: %v", game)
		}
	}

	menu := helpKeys(MenuHelp())
	if len(menu) != len(menuBindings) || menu[0] == "q" {
		t.Errorf("MenuHelp() keys = %v, want quit listed last", menu)
	}
}
