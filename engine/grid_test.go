package engine

import (
	"sort"
	"testing"

	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/vmath"
)

func TestGridInsertGet(t *testing.T) {
	g := NewGrid()

	cells := []Cell{{0, 0}, {15, 15}, {16, 0}, {-1, -1}, {-16, -17}, {1000, -1000}}
	for i, c := range cells {
		g.Insert(c, Tile{Solid: i%2 == 0})
	}

	if g.Len() != len(cells) {
		t.Errorf("Expected %d tiles, got %d", len(cells), g.Len())
	}
	for i, c := range cells {
		tile, ok := g.Get(c)
		if !ok {
			t.Fatalf("Tile at %v missing", c)
		}
		if tile.Solid != (i%2 == 0) {
			t.Errorf("Tile at %v has wrong solid flag", c)
		}
	}

	if _, ok := g.Get(Cell{-2, -1}); ok {
		t.Error("Absent neighbor of a negative cell reported present")
	}

	// Replacing does not change the count
	g.Insert(Cell{0, 0}, Tile{})
	if g.Len() != len(cells) {
		t.Errorf("Replace changed count to %d", g.Len())
	}
}

func TestGridRangeVisitsCoordinates(t *testing.T) {
	g := NewGrid()
	want := []Cell{{-17, 3}, {-1, -1}, {0, 0}, {5, 31}}
	for _, c := range want {
		g.Insert(c, Tile{})
	}

	var got []Cell
	g.Range(func(c Cell, _ *Tile) bool {
		got = append(got, c)
		return true
	})
	sort.Slice(got, func(i, j int) bool {
		if got[i].X != got[j].X {
			return got[i].X < got[j].X
		}
		return got[i].Y < got[j].Y
	})
	if len(got) != len(want) {
		t.Fatalf("Range visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range visited %v, want %v", got, want)
			break
		}
	}
}

func TestGridEntitiesNear(t *testing.T) {
	g := NewGrid()
	a := core.Entity{Index: 1, Generation: 1}
	b := core.Entity{Index: 2, Generation: 1}
	c := core.Entity{Index: 3, Generation: 1}

	g.Insert(Cell{0, 0}, Tile{Entities: []core.Entity{a}})
	g.Insert(Cell{-2, 2}, Tile{Entities: []core.Entity{b}})
	g.Insert(Cell{3, 0}, Tile{Entities: []core.Entity{c}})

	near := g.EntitiesNear(Cell{0, 0}, 2, nil)
	if len(near) != 2 {
		t.Fatalf("Expected 2 entities in range, got %v", near)
	}
	for _, e := range near {
		if e == c {
			t.Error("Entity outside the square was returned")
		}
	}
}

func TestTileOccupantSet(t *testing.T) {
	var tile Tile
	a := core.Entity{Index: 1, Generation: 1}
	b := core.Entity{Index: 2, Generation: 1}

	tile.Add(a)
	tile.Add(a)
	tile.Add(b)
	if len(tile.Entities) != 2 {
		t.Fatalf("Duplicate add stored twice: %v", tile.Entities)
	}
	if !tile.Remove(a) || tile.Has(a) {
		t.Error("Remove(a) failed")
	}
	if tile.Remove(a) {
		t.Error("Removing absent occupant should report false")
	}
	tile.Clear()
	if len(tile.Entities) != 0 {
		t.Error("Clear left occupants")
	}
}

func TestCellOfTruncates(t *testing.T) {
	if got := CellOf(vmath.Vec3{X: -0.5, Y: 2.9}); got != (Cell{0, 2}) {
		t.Errorf("CellOf = %v, want {0 2}", got)
	}
	if got := (Cell{-3, 4}).Center(); got != (vmath.Vec3{X: -2.5, Y: 4.5}) {
		t.Errorf("Center = %v", got)
	}
}
