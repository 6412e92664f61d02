package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Size    int
	Score   int
	Best    int
	Steps   int
	Board   [][]int
	MaxTile int // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	view := g.ctrl.View()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case view.State == engine.StateOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case view.Locked:
		state = StateAnimating
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.opts.Variant.ID,
		Size:    view.Size,
		Score:   view.Score,
		Best:    view.Best,
		Steps:   view.Steps,
		Board:   view.Grid,
		MaxTile: view.MaxTile,
		State:   state,
	}
}
