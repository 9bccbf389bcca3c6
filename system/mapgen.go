package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/status"
)

// MapGenSystem reveals tiles in a square around the player and populates new ones
// Scan order is row-major ascending so a fixed random sequence reproduces the same map
type MapGenSystem struct {
	halfWidth int

	statRevealed *atomic.Int64
}

// NewMapGenSystem creates the generator; halfWidth <= 0 selects parameter.MapGenHalfWidth
func NewMapGenSystem(ctx *engine.Context, halfWidth int) *MapGenSystem {
	if halfWidth <= 0 {
		halfWidth = parameter.MapGenHalfWidth
	}
	return &MapGenSystem{
		halfWidth:    halfWidth,
		statRevealed: ctx.Status.Ints.Get(status.KeyTilesRevealed),
	}
}

func (s *MapGenSystem) Name() string {
	return "mapgen"
}

func (s *MapGenSystem) Priority() int {
	return parameter.PriorityMapGen
}

func (s *MapGenSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTick}
}

func (s *MapGenSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	_, player, ok := ctx.World.PlayerBody()
	if !ok {
		return
	}
	center := engine.CellOf(player.Pos)
	tiles := ctx.World.Tiles

	for y := center.Y - s.halfWidth; y <= center.Y+s.halfWidth; y++ {
		for x := center.X - s.halfWidth; x <= center.X+s.halfWidth; x++ {
			cell := engine.Cell{X: x, Y: y}
			if tiles.Has(cell) {
				continue
			}
			tiles.Insert(cell, engine.Tile{})
			s.statRevealed.Add(1)

			switch ctx.RandN(parameter.MapGenChoices) {
			case 0:
				ctx.PushEvent(event.EventSpawn, event.SpawnPayload{Pos: cell.Center(), Variant: component.VariantTree})
			case 1:
				ctx.PushEvent(event.EventSpawn, event.SpawnPayload{Pos: cell.Center(), Variant: component.VariantZombie})
			}
		}
	}
}
