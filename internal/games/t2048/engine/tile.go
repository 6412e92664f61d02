package engine

import "sort"

// TileID identifies a live tile. IDs are issued in increasing order and are
// never reused while the registry lives.
type TileID int64

// NoTile marks an empty grid cell.
const NoTile TileID = 0

// Tile is an identity-bearing cell occupant.
type Tile struct {
	ID    TileID
	Value int
	Row   int
	Col   int
}

// Registry owns every live tile of a session.
// The grid only stores ids; values and positions are looked up here.
type Registry struct {
	nextID TileID
	tiles  map[TileID]*Tile
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tiles: make(map[TileID]*Tile),
	}
}

// Create issues a new tile with the next id.
func (r *Registry) Create(value, row, col int) Tile {
	r.nextID++
	t := &Tile{ID: r.nextID, Value: value, Row: row, Col: col}
	r.tiles[t.ID] = t
	return *t
}

// Tile returns a copy of the tile with the given id.
func (r *Registry) Tile(id TileID) (Tile, bool) {
	t, ok := r.tiles[id]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// Value returns the value of a live tile, or 0 if the id is unknown.
func (r *Registry) Value(id TileID) int {
	if t, ok := r.tiles[id]; ok {
		return t.Value
	}
	return 0
}

// Destroy removes a tile. Unknown ids are ignored.
func (r *Registry) Destroy(id TileID) {
	delete(r.tiles, id)
}

// Len returns the number of live tiles.
func (r *Registry) Len() int {
	return len(r.tiles)
}

// All returns copies of all live tiles ordered by id.
func (r *Registry) All() []Tile {
	out := make([]Tile, 0, len(r.tiles))
	for _, t := range r.tiles {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// relocate updates a tile's recorded position.
func (r *Registry) relocate(id TileID, row, col int) {
	if t, ok := r.tiles[id]; ok {
		t.Row = row
		t.Col = col
	}
}

// setValue updates a tile's value.
func (r *Registry) setValue(id TileID, value int) {
	if t, ok := r.tiles[id]; ok {
		t.Value = value
	}
}

// TileLookup resolves tile ids to values. *Registry satisfies it.
type TileLookup interface {
	Value(id TileID) int
}
