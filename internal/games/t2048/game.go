package t2048

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// bannerDuration is how long the target banner stays up. Play continues under it.
const bannerDuration = 2 * time.Second

// Options configures a Game.
type Options struct {
	Variant         Variant
	FourProbability float64         // Chance of a spawned 4 (default 0.10)
	StartTiles      int             // Tiles placed on a new game (default 2)
	Transition      time.Duration   // Delay between move stages
	Best            engine.BestStore
	Sync            engine.ScoreSync
	Listener        engine.Listener // Extra observer, e.g. a spectator stream
	Logger          *log.Logger
}

// Game adapts the move engine to the tick-driven terminal loop.
// Each Step advances the engine clock by one tick and applies the frame's input.
type Game struct {
	opts Options

	ctrl  *engine.Controller
	clock *engine.ManualClock
	view  *TileView

	tick     uint64
	tickStep time.Duration

	screenW int
	screenH int

	paused   bool
	tooSmall bool
	banner   time.Duration
}

// New validates opts and returns a game. Call Reset before the first Step.
func New(opts Options) (*Game, error) {
	if opts.Variant.Size == 0 {
		opts.Variant = DefaultVariant()
	}
	if opts.Variant.Size < 0 {
		return nil, fmt.Errorf("t2048: %w: %d", engine.ErrInvalidSize, opts.Variant.Size)
	}
	if opts.FourProbability == 0 {
		opts.FourProbability = engine.DefaultFourProbability
	}
	if opts.Transition < 0 {
		opts.Transition = 0
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Game{opts: opts}, nil
}

// ID returns the score key of the variant.
func (g *Game) ID() string {
	return g.opts.Variant.Key
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048 " + g.opts.Variant.Name
}

// Variant returns the board preset in play.
func (g *Game) Variant() Variant {
	return g.opts.Variant
}

// Reset builds a fresh engine seeded from cfg and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.tick = 0
	g.tickStep = time.Second / time.Duration(tickRate)
	g.paused = false
	g.banner = 0
	g.clock = engine.NewManualClock()
	g.view = NewTileView(g.opts.Transition)

	ctrl, err := engine.NewController(engine.Options{
		Size:       g.opts.Variant.Size,
		Threshold:  g.opts.Variant.Target,
		StartTiles: g.opts.StartTiles,
		Interval:   g.opts.Transition,
		Clock:      g.clock,
		Spawner:    engine.NewSpawner(rand.New(rand.NewSource(seed)), g.opts.FourProbability),
		Best:       g.opts.Best,
		Sync:       g.opts.Sync,
		Logger:     g.opts.Logger,
	})
	if err != nil {
		// Options were validated in New.
		panic(err)
	}
	ctrl.Subscribe(g.view.Handle)
	ctrl.Subscribe(g.onEvent)
	if g.opts.Listener != nil {
		ctrl.Subscribe(g.opts.Listener)
	}
	g.ctrl = ctrl

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	ctrl.NewGame()
}

func (g *Game) onEvent(ev engine.Event) {
	switch ev.(type) {
	case engine.ThresholdReached:
		g.banner = bannerDuration
	case engine.GameStarted:
		g.banner = 0
	}
}

// Resize records the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := minScreenSize(g.opts.Variant.Size)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && !g.tooSmall {
		g.paused = !g.paused
	}
	if g.tooSmall || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance(g.tickStep)
	g.view.Advance(g.tickStep)
	if g.banner > 0 {
		g.banner -= g.tickStep
	}

	if in.Has(core.ActionRestart) {
		g.ctrl.NewGame()
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Directions() {
		if dir, ok := directionFor(a); ok {
			g.ctrl.Move(dir)
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps a move action to an engine direction.
func directionFor(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		Best:     g.ctrl.Best(),
		GameOver: g.ctrl.State() == engine.StateOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Controller exposes the engine, e.g. for tests and headless drivers.
func (g *Game) Controller() *engine.Controller {
	return g.ctrl
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: New game | P: Pause | B: Back | Q: Quit"
}
