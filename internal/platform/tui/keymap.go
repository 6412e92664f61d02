package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// binding ties a key binding to the action it triggers.
type binding[A any] struct {
	key    key.Binding
	action A
}

var quitBinding = key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))

// gameBindings are checked in order; the first match wins.
var gameBindings = []binding[core.Action]{
	{key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w/k", "up")), core.ActionUp},
	{key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s/j", "down")), core.ActionDown},
	{key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a/h", "left")), core.ActionLeft},
	{key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d/l", "right")), core.ActionRight},
	{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new game")), core.ActionRestart},
	{key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")), core.ActionPause},
	{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back")), core.ActionBack},
	{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuBindings = []binding[MenuAction]{
	{quitBinding, MenuActionQuit},
	{key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")), MenuActionUp},
	{key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")), MenuActionDown},
	{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")), MenuActionSelect},
	{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")), MenuActionBack},
	{key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")), MenuActionScoreboard},
}

func lookup[A any](table []binding[A], msg tea.KeyMsg, none A) A {
	for _, b := range table {
		if key.Matches(msg, b.key) {
			return b.action
		}
	}
	return none
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, quitBinding) {
		return core.ActionQuit, true
	}
	return lookup(gameBindings, msg, core.ActionNone), false
}

// MapKeyToFrame queues the game action for msg on frame.
// Quit is reported, never queued.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return lookup(menuBindings, msg, MenuActionNone)
}

// GameHelp lists the game key bindings for a help line.
func GameHelp() []key.Binding {
	out := make([]key.Binding, 0, len(gameBindings)+1)
	for _, b := range gameBindings {
		if b.key.Help().Key != "" {
			out = append(out, b.key)
		}
	}
	return append(out, quitBinding)
}

// MenuHelp lists the menu key bindings for a help line.
func MenuHelp() []key.Binding {
	out := make([]key.Binding, 0, len(menuBindings))
	for _, b := range menuBindings[1:] {
		out = append(out, b.key)
	}
	return append(out, quitBinding)
}
