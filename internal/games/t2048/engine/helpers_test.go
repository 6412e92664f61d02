package engine

import "testing"

// buildBoard creates a grid and registry from a value matrix (0 = empty).
// Tile ids are issued in row-major order.
func buildBoard(t *testing.T, values [][]int) (*Grid, *Registry) {
	t.Helper()
	g, err := NewGrid(len(values))
	if err != nil {
		t.Fatalf("NewGrid(%d) failed: %v", len(values), err)
	}
	reg := NewRegistry()
	for r, row := range values {
		for c, v := range row {
			if v == 0 {
				continue
			}
			tile := reg.Create(v, r, c)
			if err := g.Place(r, c, tile.ID); err != nil {
				t.Fatalf("Place(%d, %d) failed: %v", r, c, err)
			}
		}
	}
	return g, reg
}

// valuesEqual compares two value matrices.
func valuesEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// resultValues resolves a move result's grid with merged values applied.
func resultValues(res MoveResult, reg *Registry) [][]int {
	bumped := make(map[TileID]int)
	for _, m := range res.Merges {
		bumped[m.Survivor] = m.NewValue
	}
	size := res.Grid.Size()
	out := make([][]int, size)
	for r := range size {
		out[r] = make([]int, size)
		for c := range size {
			id := res.Grid.at(r, c)
			if id == NoTile {
				continue
			}
			if v, ok := bumped[id]; ok {
				out[r][c] = v
			} else {
				out[r][c] = reg.Value(id)
			}
		}
	}
	return out
}

// sumValues adds every value in the matrix.
func sumValues(values [][]int) int {
	total := 0
	for _, row := range values {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// scriptedSource replays fixed draws. Intn returns the next scripted int
// modulo n; Float64 returns the next scripted float.
type scriptedSource struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)]
	s.i++
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}
