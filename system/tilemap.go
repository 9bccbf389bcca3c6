package system

import (
	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
)

// TileMapSystem rebuilds every tile's occupant set from entity positions
// Entities standing on unrevealed cells are left untracked
type TileMapSystem struct{}

func NewTileMapSystem() *TileMapSystem {
	return &TileMapSystem{}
}

func (s *TileMapSystem) Name() string {
	return "tilemap"
}

func (s *TileMapSystem) Priority() int {
	return parameter.PriorityTileMap
}

func (s *TileMapSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTick}
}

func (s *TileMapSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	tiles := ctx.World.Tiles
	tiles.ClearOccupants()

	ctx.World.Entities.Range(func(e core.Entity, b *component.Body) bool {
		if tile, ok := tiles.Get(engine.CellOf(b.Pos)); ok {
			tile.Add(e)
		}
		return true
	})
}
