package engine

import (
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/vmath"
)

const (
	chunkShift = 4
	ChunkSize  = 1 << chunkShift
	chunkMask  = ChunkSize - 1
	chunkArea  = ChunkSize * ChunkSize
)

// Cell is an integer grid coordinate, unbounded in both signs
type Cell struct {
	X, Y int
}

// CellOf returns the cell containing a world position, truncating toward zero
func CellOf(pos vmath.Vec3) Cell {
	x, y := vmath.V3Cell(pos)
	return Cell{X: x, Y: y}
}

// Center returns the world position at the middle of the cell
func (c Cell) Center() vmath.Vec3 {
	return vmath.Vec3{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Tile is one grid cell: a reserved solid flag and its occupant set
type Tile struct {
	Solid    bool
	Entities []core.Entity
}

// Add inserts e into the occupant set, ignoring duplicates
func (t *Tile) Add(e core.Entity) {
	if t.Has(e) {
		return
	}
	t.Entities = append(t.Entities, e)
}

// Remove deletes e from the occupant set using swap-remove
func (t *Tile) Remove(e core.Entity) bool {
	for i, occ := range t.Entities {
		if occ == e {
			last := len(t.Entities) - 1
			t.Entities[i] = t.Entities[last]
			t.Entities[last] = core.Entity{}
			t.Entities = t.Entities[:last]
			return true
		}
	}
	return false
}

// Has reports whether e occupies the tile
func (t *Tile) Has(e core.Entity) bool {
	for _, occ := range t.Entities {
		if occ == e {
			return true
		}
	}
	return false
}

// Clear empties the occupant set, keeping capacity
func (t *Tile) Clear() {
	clear(t.Entities)
	t.Entities = t.Entities[:0]
}

type chunkCoord struct {
	X, Y int
}

// chunk is a fixed block of tiles with presence bits
type chunk struct {
	tiles   [chunkArea]Tile
	present [chunkArea]bool
}

// Grid is a sparse map from Cell to Tile
// Tiles are stored in 16x16 chunks allocated on first insert
type Grid struct {
	chunks map[chunkCoord]*chunk
	count  int
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{
		chunks: make(map[chunkCoord]*chunk),
	}
}

// locate splits a cell into chunk coordinate and local index
// Arithmetic shift floors negative coordinates into the correct chunk
func locate(c Cell) (chunkCoord, int) {
	cc := chunkCoord{X: c.X >> chunkShift, Y: c.Y >> chunkShift}
	local := (c.Y&chunkMask)*ChunkSize + (c.X & chunkMask)
	return cc, local
}

// Get returns the tile at c if present
func (g *Grid) Get(c Cell) (*Tile, bool) {
	cc, local := locate(c)
	ch, ok := g.chunks[cc]
	if !ok || !ch.present[local] {
		return nil, false
	}
	return &ch.tiles[local], true
}

// Has reports whether a tile exists at c
func (g *Grid) Has(c Cell) bool {
	_, ok := g.Get(c)
	return ok
}

// Insert stores tile at c, replacing any existing tile
func (g *Grid) Insert(c Cell, tile Tile) {
	cc, local := locate(c)
	ch, ok := g.chunks[cc]
	if !ok {
		ch = &chunk{}
		g.chunks[cc] = ch
	}
	if !ch.present[local] {
		ch.present[local] = true
		g.count++
	}
	ch.tiles[local] = tile
}

// EntitiesNear appends occupants of every present tile in the square [center-radius, center+radius]
func (g *Grid) EntitiesNear(center Cell, radius int, dst []core.Entity) []core.Entity {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if tile, ok := g.Get(Cell{X: x, Y: y}); ok {
				dst = append(dst, tile.Entities...)
			}
		}
	}
	return dst
}

// Range calls fn for every present tile until fn returns false
// Visit order is unspecified
func (g *Grid) Range(fn func(Cell, *Tile) bool) {
	for cc, ch := range g.chunks {
		baseX := cc.X << chunkShift
		baseY := cc.Y << chunkShift
		for i := 0; i < chunkArea; i++ {
			if !ch.present[i] {
				continue
			}
			c := Cell{X: baseX + (i & chunkMask), Y: baseY + (i >> chunkShift)}
			if !fn(c, &ch.tiles[i]) {
				return
			}
		}
	}
}

// ClearOccupants empties every tile's occupant set
func (g *Grid) ClearOccupants() {
	for _, ch := range g.chunks {
		for i := range ch.tiles {
			if ch.present[i] {
				ch.tiles[i].Clear()
			}
		}
	}
}

// Len returns the number of present tiles
func (g *Grid) Len() int {
	return g.count
}

// Clear removes every tile
func (g *Grid) Clear() {
	clear(g.chunks)
	g.count = 0
}
