package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// State is the lifecycle state of the game.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateOver
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// DefaultThreshold is the merge value that raises the one-shot win signal.
const DefaultThreshold = 2048

// DefaultStartTiles is the number of tiles spawned on a new game.
const DefaultStartTiles = 2

// Session is the state of one game. A new game replaces it wholesale.
type Session struct {
	ID      uint64
	Grid    *Grid
	Tiles   *Registry
	State   State
	Reached bool
	Steps   int
}

// MaxTile returns the highest tile value on the board.
func (s *Session) MaxTile() int {
	maxVal := 0
	for _, t := range s.Tiles.All() {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Options configures a Controller.
type Options struct {
	Size       int           // Board dimension (default 4)
	Threshold  int           // Win signal merge value (default 2048, negative disables)
	StartTiles int           // Tiles spawned on new game (default 2)
	Interval   time.Duration // Delay between animation stages; 0 runs moves synchronously
	Clock      Clock         // Required when Interval > 0
	Spawner    *Spawner      // Default: time-seeded source, 10% fours
	Best       BestStore     // Optional best score persistence
	Sync       ScoreSync     // Optional game-over sink
	Logger     *log.Logger
}

// Controller is the game state machine. It owns the current session and is
// the only place the grid and the registry are mutated.
type Controller struct {
	size       int
	threshold  int
	startTiles int

	spawner   *Spawner
	scheduler *Scheduler
	score     *ScoreTracker
	sync      ScoreSync
	logger    *log.Logger
	listeners []Listener

	session   *Session
	sessionID uint64
}

// NewController validates opts and returns an idle controller.
func NewController(opts Options) (*Controller, error) {
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.Size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, opts.Size)
	}
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Threshold < 0 {
		opts.Threshold = 0
	}
	if opts.StartTiles <= 0 {
		opts.StartTiles = DefaultStartTiles
	}
	if opts.Interval > 0 && opts.Clock == nil {
		return nil, fmt.Errorf("engine: a clock is required for interval %s", opts.Interval)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Spawner == nil {
		src := rand.New(rand.NewSource(time.Now().UnixNano()))
		opts.Spawner = NewSpawner(src, DefaultFourProbability)
	}

	return &Controller{
		size:       opts.Size,
		threshold:  opts.Threshold,
		startTiles: opts.StartTiles,
		spawner:    opts.Spawner,
		scheduler:  NewScheduler(opts.Clock, opts.Interval),
		score:      NewScoreTracker(opts.Best, opts.Logger),
		sync:       opts.Sync,
		logger:     opts.Logger,
	}, nil
}

// Subscribe registers a listener for every subsequent event.
func (c *Controller) Subscribe(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

func (c *Controller) emit(ev Event) {
	for _, l := range c.listeners {
		l(ev)
	}
}

// Session returns the current session, or nil before the first game.
func (c *Controller) Session() *Session {
	return c.session
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	if c.session == nil {
		return StateIdle
	}
	return c.session.State
}

// Locked reports whether a move is still completing.
func (c *Controller) Locked() bool {
	return c.scheduler.Locked()
}

// Score returns the running score.
func (c *Controller) Score() int {
	return c.score.Score()
}

// Best returns the best score.
func (c *Controller) Best() int {
	return c.score.Best()
}

// NewGame discards the current session, including any move still animating,
// and starts a fresh one with the starting tiles placed.
func (c *Controller) NewGame() {
	c.scheduler.Reset()

	grid, err := NewGrid(c.size)
	if err != nil {
		panic(err)
	}
	c.sessionID++
	s := &Session{
		ID:    c.sessionID,
		Grid:  grid,
		Tiles: NewRegistry(),
		State: StatePlaying,
	}
	c.session = s
	c.score.Reset()

	c.emit(GameStarted{SessionID: s.ID, Size: c.size})
	for range c.startTiles {
		if t, ok := c.spawner.Spawn(s.Grid, s.Tiles); ok {
			c.emit(TileSpawned{Tile: t})
		}
	}

	if !CanMove(s.Grid, s.Tiles) {
		c.finish(s)
	}
	c.logger.Debug("new game", "session", s.ID, "size", c.size)
}

// Move applies a direction. Moves while idle, over or locked, and moves that
// change nothing, return a result with Changed false and have no effect.
// A rejected move carries a copy of the current grid; Grid is nil only
// before the first game.
func (c *Controller) Move(dir Direction) MoveResult {
	s := c.session
	if s == nil {
		return MoveResult{Direction: dir}
	}
	if s.State != StatePlaying || c.scheduler.Locked() || !dir.Valid() {
		return MoveResult{Direction: dir, Grid: s.Grid.Clone()}
	}

	res := Resolve(s.Grid, s.Tiles, dir, Goal{Threshold: c.threshold, Reached: s.Reached})
	if !res.Changed {
		return res
	}

	c.commit(s, res)
	s.Steps++
	if res.ReachedThreshold {
		s.Reached = true
	}

	c.scheduler.Run(
		func() { c.showTranslations(res) },
		func() { c.showMerges(res) },
		func() { c.settle(s, res) },
	)
	return res
}

// commit swaps in the resolved grid and brings the registry in line with it.
func (c *Controller) commit(s *Session, res MoveResult) {
	consumed := make(map[TileID]bool, len(res.Merges))
	for _, m := range res.Merges {
		consumed[m.Consumed] = true
		s.Tiles.setValue(m.Survivor, m.NewValue)
		s.Tiles.Destroy(m.Consumed)
	}
	for _, tr := range res.Translations {
		if consumed[tr.ID] {
			continue
		}
		s.Tiles.relocate(tr.ID, tr.ToRow, tr.ToCol)
	}
	s.Grid = res.Grid
}

func (c *Controller) showTranslations(res MoveResult) {
	for _, tr := range res.Translations {
		c.emit(TileMoved{
			ID:   tr.ID,
			From: Cell{Row: tr.FromRow, Col: tr.FromCol},
			To:   Cell{Row: tr.ToRow, Col: tr.ToCol},
		})
	}
}

func (c *Controller) showMerges(res MoveResult) {
	for _, m := range res.Merges {
		c.emit(TileRemoved{ID: m.Consumed})
		c.emit(TileMerged{
			Survivor: m.Survivor,
			Consumed: m.Consumed,
			At:       Cell{Row: m.Row, Col: m.Col},
			Value:    m.NewValue,
		})
	}
}

// settle is the last stage: spawn, credit the score, check for game over.
func (c *Controller) settle(s *Session, res MoveResult) {
	if t, ok := c.spawner.Spawn(s.Grid, s.Tiles); ok {
		c.emit(TileSpawned{Tile: t})
	}

	if res.ScoreDelta > 0 {
		c.score.Add(res.ScoreDelta)
		c.emit(ScoreChanged{Score: c.score.Score(), Best: c.score.Best(), Delta: res.ScoreDelta})
	}
	if res.ReachedThreshold {
		c.emit(ThresholdReached{Value: c.threshold})
	}

	if !CanMove(s.Grid, s.Tiles) {
		c.finish(s)
	}
}

// finish performs the transition to StateOver and notifies the sync sink once.
func (c *Controller) finish(s *Session) {
	if s.State == StateOver {
		return
	}
	s.State = StateOver

	result := GameResult{
		SessionID: s.ID,
		Size:      c.size,
		Score:     c.score.Score(),
		Best:      c.score.Best(),
		MaxTile:   s.MaxTile(),
		Steps:     s.Steps,
	}
	c.emit(GameOver{Result: result})
	c.logger.Info("game over", "session", s.ID, "score", result.Score, "max_tile", result.MaxTile, "steps", result.Steps)

	if c.sync == nil {
		return
	}
	if err := c.sync.GameEnded(result); err != nil {
		c.logger.Warn("could not sync final score", "session", s.ID, "error", err)
	}
}

// View is a read-only projection of the game for renderers.
type View struct {
	SessionID        uint64
	Size             int
	Grid             [][]int
	Tiles            []Tile
	Score            int
	Best             int
	Steps            int
	MaxTile          int
	State            State
	Over             bool
	Locked           bool
	ReachedThreshold bool
}

// View returns a snapshot of the current game.
func (c *Controller) View() View {
	v := View{
		Size:   c.size,
		Score:  c.score.Score(),
		Best:   c.score.Best(),
		State:  c.State(),
		Locked: c.scheduler.Locked(),
	}
	s := c.session
	if s == nil {
		return v
	}
	v.SessionID = s.ID
	v.Grid = s.Grid.Values(s.Tiles)
	v.Tiles = s.Tiles.All()
	v.Steps = s.Steps
	v.MaxTile = s.MaxTile()
	v.Over = s.State == StateOver
	v.ReachedThreshold = s.Reached
	return v
}
