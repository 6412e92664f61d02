package t2048

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// popDuration is how long a spawned or merged tile stays highlighted.
const popDuration = 150 * time.Millisecond

// Sprite is the on-screen state of one tile.
type Sprite struct {
	ID       engine.TileID
	Value    int
	FromRow  int
	FromCol  int
	ToRow    int
	ToCol    int
	Progress float64       // 0.0 → 1.0 along the slide
	Pop      time.Duration // Remaining highlight time
	Merged   bool          // Highlight comes from a merge rather than a spawn
}

// Position returns the eased row and column of the sprite.
func (s Sprite) Position() (row, col float64) {
	t := core.EaseOutQuad(s.Progress)
	row = core.Lerp(float64(s.FromRow), float64(s.ToRow), t)
	col = core.Lerp(float64(s.FromCol), float64(s.ToCol), t)
	return row, col
}

// Popping reports whether the sprite is highlighted.
func (s Sprite) Popping() bool {
	return s.Pop > 0
}

// TileView follows engine events and animates tiles between them.
// It never reads the grid; everything it shows arrived as an event.
type TileView struct {
	slide   time.Duration
	sprites map[engine.TileID]*Sprite
}

// NewTileView creates a view whose slides last slide. Zero slides jump instantly.
func NewTileView(slide time.Duration) *TileView {
	return &TileView{
		slide:   slide,
		sprites: make(map[engine.TileID]*Sprite),
	}
}

// Handle applies an engine event. It satisfies engine.Listener.
func (v *TileView) Handle(ev engine.Event) {
	switch e := ev.(type) {
	case engine.GameStarted:
		clear(v.sprites)

	case engine.TileSpawned:
		v.sprites[e.Tile.ID] = &Sprite{
			ID:       e.Tile.ID,
			Value:    e.Tile.Value,
			FromRow:  e.Tile.Row,
			FromCol:  e.Tile.Col,
			ToRow:    e.Tile.Row,
			ToCol:    e.Tile.Col,
			Progress: 1,
			Pop:      popDuration,
		}

	case engine.TileMoved:
		s, ok := v.sprites[e.ID]
		if !ok {
			return
		}
		s.FromRow, s.FromCol = e.From.Row, e.From.Col
		s.ToRow, s.ToCol = e.To.Row, e.To.Col
		s.Progress = 0
		if v.slide <= 0 {
			s.Progress = 1
		}

	case engine.TileRemoved:
		delete(v.sprites, e.ID)

	case engine.TileMerged:
		s, ok := v.sprites[e.Survivor]
		if !ok {
			return
		}
		s.Value = e.Value
		s.Progress = 1
		s.Pop = popDuration
		s.Merged = true
	}
}

// Advance moves every animation forward by d.
func (v *TileView) Advance(d time.Duration) {
	for _, s := range v.sprites {
		if s.Progress < 1 {
			if v.slide <= 0 {
				s.Progress = 1
			} else {
				s.Progress = core.ClampF(s.Progress+float64(d)/float64(v.slide), 0, 1)
			}
		}
		if s.Pop > 0 {
			s.Pop -= d
			if s.Pop <= 0 {
				s.Pop = 0
				s.Merged = false
			}
		}
	}
}

// Animating reports whether any tile is still sliding or highlighted.
func (v *TileView) Animating() bool {
	for _, s := range v.sprites {
		if s.Progress < 1 || s.Pop > 0 {
			return true
		}
	}
	return false
}

// Sprites returns the tiles to draw. Sliding tiles come first so that
// settled tiles are drawn over them.
func (v *TileView) Sprites() []Sprite {
	out := make([]Sprite, 0, len(v.sprites))
	for _, s := range v.sprites {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].Progress < 1, out[j].Progress < 1
		if si != sj {
			return si
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of tiles in view.
func (v *TileView) Len() int {
	return len(v.sprites)
}
