// Package engine implements the identity-preserving 2048 move engine: the grid
// and tile registry, the move resolver, the random spawner, the score tracker,
// the animation scheduler and the game state machine that ties them together.
//
// The package has no terminal, storage or network dependencies. Collaborators
// plug in through BestStore, ScoreSync, Clock and event listeners.
package engine

import (
	"fmt"
	"strings"
)

// DefaultSize is the standard board dimension.
const DefaultSize = 4

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Grid is a fixed size square matrix of tile references.
type Grid struct {
	size  int
	cells []TileID
}

// NewGrid returns an empty size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Grid{
		size:  size,
		cells: make([]TileID, size*size),
	}, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.size, g.size)
	}
	return row*g.size + col, nil
}

// At returns the tile id at (row, col), or NoTile if the cell is empty.
func (g *Grid) At(row, col int) (TileID, error) {
	i, err := g.index(row, col)
	if err != nil {
		return NoTile, err
	}
	return g.cells[i], nil
}

// Place puts a tile reference into an empty cell.
func (g *Grid) Place(row, col int, id TileID) error {
	i, err := g.index(row, col)
	if err != nil {
		return err
	}
	if g.cells[i] != NoTile {
		return fmt.Errorf("%w: (%d,%d) holds tile %d", ErrCellOccupied, row, col, g.cells[i])
	}
	g.cells[i] = id
	return nil
}

// Remove clears a cell. Clearing an empty cell is a no-op.
func (g *Grid) Remove(row, col int) error {
	i, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cells[i] = NoTile
	return nil
}

// EmptyCells returns every cell without a tile.
// Callers must not rely on the order.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, id := range g.cells {
		if id == NoTile {
			cells = append(cells, Cell{Row: i / g.size, Col: i % g.size})
		}
	}
	return cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]TileID, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether two grids hold the same references in the same cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Values resolves the grid to a matrix of tile values (0 for empty).
func (g *Grid) Values(tiles TileLookup) [][]int {
	out := make([][]int, g.size)
	for r := range g.size {
		out[r] = make([]int, g.size)
		for c := range g.size {
			if id := g.cells[r*g.size+c]; id != NoTile {
				out[r][c] = tiles.Value(id)
			}
		}
	}
	return out
}

// String renders the grid ids, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", g.cells[r*g.size+c])
		}
	}
	return sb.String()
}

// at is the unchecked accessor used by the resolver once bounds are known.
func (g *Grid) at(row, col int) TileID {
	return g.cells[row*g.size+col]
}

func (g *Grid) set(row, col int, id TileID) {
	g.cells[row*g.size+col] = id
}
