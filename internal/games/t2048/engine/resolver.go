package engine

// Translation records a tile whose position changed during a move.
type Translation struct {
	ID      TileID
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

// Merge records two equal tiles combining. Survivor stayed in the cell and
// doubles; Consumed slid into it and is destroyed.
type Merge struct {
	Survivor TileID
	Consumed TileID
	Row      int
	Col      int
	NewValue int
}

// MoveResult describes the outcome of resolving one direction on a grid.
// It does not own tiles; Grid references the same ids as the input.
type MoveResult struct {
	Changed          bool
	Direction        Direction
	Translations     []Translation
	Merges           []Merge
	Grid             *Grid
	ScoreDelta       int
	ReachedThreshold bool
}

// Goal carries the merge threshold signal state into the resolver.
type Goal struct {
	Threshold int  // Merge value that raises ReachedThreshold; 0 disables it
	Reached   bool // Threshold already crossed earlier in the session
}

// Resolve computes the result of sliding every tile in direction dir.
// The input grid is never modified.
func Resolve(g *Grid, tiles TileLookup, dir Direction, goal Goal) MoveResult {
	res := MoveResult{Direction: dir, Grid: g.Clone()}
	dr, dc := dir.Vector()
	if dr == 0 && dc == 0 {
		return res
	}

	work := res.Grid
	size := work.Size()
	merged := make([]bool, size*size)
	// Survivor values are bumped here so later comparisons see the doubled tile.
	values := make(map[TileID]int)
	valueOf := func(id TileID) int {
		if v, ok := values[id]; ok {
			return v
		}
		return tiles.Value(id)
	}

	rows := traversal(size, dr == 1)
	cols := traversal(size, dc == 1)

	for _, r := range rows {
		for _, c := range cols {
			id := work.at(r, c)
			if id == NoTile {
				continue
			}
			v := valueOf(id)

			toR, toC := r, c
			mergeInto := NoTile
			for {
				nr, nc := toR+dr, toC+dc
				if !work.InBounds(nr, nc) {
					break
				}
				next := work.at(nr, nc)
				if next == NoTile {
					toR, toC = nr, nc
					continue
				}
				if valueOf(next) == v && !merged[nr*size+nc] {
					toR, toC = nr, nc
					mergeInto = next
				}
				break
			}

			if toR == r && toC == c {
				continue
			}

			work.set(r, c, NoTile)
			res.Translations = append(res.Translations, Translation{
				ID: id, FromRow: r, FromCol: c, ToRow: toR, ToCol: toC,
			})

			if mergeInto == NoTile {
				work.set(toR, toC, id)
				continue
			}

			newValue := v * 2
			merged[toR*size+toC] = true
			values[mergeInto] = newValue
			res.Merges = append(res.Merges, Merge{
				Survivor: mergeInto,
				Consumed: id,
				Row:      toR,
				Col:      toC,
				NewValue: newValue,
			})
			res.ScoreDelta += newValue
			if goal.Threshold > 0 && !goal.Reached && newValue >= goal.Threshold {
				res.ReachedThreshold = true
			}
		}
	}

	res.Changed = len(res.Translations) > 0 || len(res.Merges) > 0
	return res
}

// traversal returns 0..size-1, reversed when the slide heads toward the high edge.
func traversal(size int, reversed bool) []int {
	order := make([]int, size)
	for i := range size {
		if reversed {
			order[i] = size - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}

// CanMove reports whether any move is legal: an empty cell exists or two
// orthogonal neighbours hold equal values.
func CanMove(g *Grid, tiles TileLookup) bool {
	size := g.Size()
	for r := range size {
		for c := range size {
			id := g.at(r, c)
			if id == NoTile {
				return true
			}
			v := tiles.Value(id)
			if c < size-1 {
				if right := g.at(r, c+1); right != NoTile && tiles.Value(right) == v {
					return true
				}
			}
			if r < size-1 {
				if down := g.at(r+1, c); down != NoTile && tiles.Value(down) == v {
					return true
				}
			}
		}
	}
	return false
}

// CanMoveInDirection dry-runs the resolver for a single direction.
func CanMoveInDirection(g *Grid, tiles TileLookup, dir Direction) bool {
	return Resolve(g, tiles, dir, Goal{}).Changed
}
