// Package tui provides the Bubble Tea integration for the 2048 front end.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when a config carries no tick rate.
const defaultTickRate = 60

// tickGen numbers tick loops so that a loop left behind by a finished game
// cannot drive the next one.
var tickGen atomic.Uint64

// TickMsg is sent to trigger a game tick.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickCmd returns a Bubble Tea command that sends a tick of loop gen at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
