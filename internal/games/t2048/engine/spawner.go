package engine

// Source is the randomness a Spawner draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// DefaultFourProbability is the chance a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.10

// Spawner inserts new tiles into random empty cells.
type Spawner struct {
	src      Source
	fourProb float64
}

// NewSpawner creates a spawner. A probability outside [0, 1] falls back to the default.
func NewSpawner(src Source, fourProb float64) *Spawner {
	if fourProb < 0 || fourProb > 1 {
		fourProb = DefaultFourProbability
	}
	return &Spawner{src: src, fourProb: fourProb}
}

// FourProbability returns the configured chance of spawning a 4.
func (s *Spawner) FourProbability() float64 {
	return s.fourProb
}

// Value draws a spawn value: 4 with the configured probability, otherwise 2.
func (s *Spawner) Value() int {
	if s.src.Float64() < s.fourProb {
		return 4
	}
	return 2
}

// Spawn places a new tile in a uniformly chosen empty cell.
// Returns false without touching the grid when no cell is empty.
func (s *Spawner) Spawn(g *Grid, tiles *Registry) (Tile, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[s.src.Intn(len(empty))]
	t := tiles.Create(s.Value(), cell.Row, cell.Col)
	if err := g.Place(cell.Row, cell.Col, t.ID); err != nil {
		panic(err)
	}
	return t, true
}
