package engine

// Event is a tile-level notification for renderers and other observers.
// Listeners receive events in the order the engine makes them observable.
type Event interface {
	EventType() string
}

// GameStarted is emitted when a new session replaces the previous one.
type GameStarted struct {
	SessionID uint64 `json:"session_id"`
	Size      int    `json:"size"`
}

// TileSpawned is emitted for every new tile, including the starting tiles.
type TileSpawned struct {
	Tile Tile `json:"tile"`
}

// TileMoved is emitted when a tile slides to a new cell.
type TileMoved struct {
	ID   TileID `json:"id"`
	From Cell   `json:"from"`
	To   Cell   `json:"to"`
}

// TileMerged is emitted when the survivor of a merge takes its new value.
type TileMerged struct {
	Survivor TileID `json:"survivor"`
	Consumed TileID `json:"consumed"`
	At       Cell   `json:"at"`
	Value    int    `json:"value"`
}

// TileRemoved is emitted when a consumed tile leaves the board.
type TileRemoved struct {
	ID TileID `json:"id"`
}

// ScoreChanged is emitted after a move's merges are credited.
type ScoreChanged struct {
	Score int `json:"score"`
	Best  int `json:"best"`
	Delta int `json:"delta"`
}

// ThresholdReached is emitted once per session when a merge first reaches the target.
type ThresholdReached struct {
	Value int `json:"value"`
}

// GameOver is emitted on the transition to StateOver.
type GameOver struct {
	Result GameResult `json:"result"`
}

func (GameStarted) EventType() string      { return "game_started" }
func (TileSpawned) EventType() string      { return "spawned" }
func (TileMoved) EventType() string        { return "moved" }
func (TileMerged) EventType() string       { return "merged" }
func (TileRemoved) EventType() string      { return "removed" }
func (ScoreChanged) EventType() string     { return "score" }
func (ThresholdReached) EventType() string { return "threshold" }
func (GameOver) EventType() string         { return "game_over" }

// Listener receives engine events.
type Listener func(Event)
