package engine

import (
	"errors"
	"testing"
)

func TestNewGridInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewGrid(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewGrid(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g, err := NewGrid(4)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	cells := []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}}
	for _, c := range cells {
		if _, err := g.At(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d) error = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if err := g.Place(c.Row, c.Col, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Place(%d, %d) error = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if err := g.Remove(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Remove(%d, %d) error = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
	}
}

func TestGridPlaceOccupied(t *testing.T) {
	g, _ := NewGrid(4)

	if err := g.Place(1, 2, 7); err != nil {
		t.Fatalf("Place on empty cell failed: %v", err)
	}
	if err := g.Place(1, 2, 8); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Place on occupied cell error = %v, want ErrCellOccupied", err)
	}

	id, err := g.At(1, 2)
	if err != nil || id != 7 {
		t.Errorf("At(1, 2) = %d, %v; want 7, nil", id, err)
	}
}

func TestGridRemove(t *testing.T) {
	g, _ := NewGrid(3)
	_ = g.Place(0, 0, 1)

	if err := g.Remove(0, 0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if id, _ := g.At(0, 0); id != NoTile {
		t.Errorf("cell should be empty after Remove, got %d", id)
	}

	// Removing an empty cell is a no-op.
	if err := g.Remove(0, 0); err != nil {
		t.Errorf("Remove on empty cell should be a no-op, got %v", err)
	}
}

func TestGridEmptyCells(t *testing.T) {
	g, _ := buildBoard(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	for _, c := range cells {
		if id, _ := g.At(c.Row, c.Col); id != NoTile {
			t.Errorf("EmptyCells returned occupied cell (%d, %d)", c.Row, c.Col)
		}
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g, _ := buildBoard(t, [][]int{
		{2, 0},
		{0, 4},
	})
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	_ = clone.Remove(0, 0)
	if id, _ := g.At(0, 0); id == NoTile {
		t.Error("modifying the clone changed the original")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modifying the clone")
	}
}

func TestRegistryIDsMonotonic(t *testing.T) {
	reg := NewRegistry()
	a := reg.Create(2, 0, 0)
	b := reg.Create(4, 0, 1)
	reg.Destroy(b.ID)
	c := reg.Create(2, 1, 1)

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids should be strictly increasing: %d, %d, %d", a.ID, b.ID, c.ID)
	}
	if _, ok := reg.Tile(b.ID); ok {
		t.Error("destroyed tile should not resolve")
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}

	all := reg.All()
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != c.ID {
		t.Errorf("All() = %+v, want tiles %d and %d in id order", all, a.ID, c.ID)
	}
}
