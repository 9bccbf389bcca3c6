package engine

import (
	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/event"
)

// World is the complete simulation state: entities, tiles, player handle and pending events
type World struct {
	Entities *Store[component.Body]
	Tiles    *Grid

	// Player is the nil handle until a Player spawn runs
	Player core.Entity

	// Fade drives the fade-in overlay after a restart
	Fade component.TimerComponent

	events *event.Queue
	frame  int64
}

// NewWorld creates an empty world with no player
func NewWorld() *World {
	return &World{
		Entities: NewStore[component.Body](),
		Tiles:    NewGrid(),
		events:   event.NewQueue(),
	}
}

// PushEvent appends an event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.frame,
	})
}

// Events returns the pending event queue
func (w *World) Events() *event.Queue {
	return w.events
}

// Frame returns the host frame counter
func (w *World) Frame() int64 {
	return w.frame
}

// AdvanceFrame increments the frame counter, called by the host once per frame
func (w *World) AdvanceFrame() int64 {
	w.frame++
	return w.frame
}

// Entity resolves a handle to its body
func (w *World) Entity(e core.Entity) (*component.Body, bool) {
	return w.Entities.Get(e)
}

// PlayerBody resolves the player handle
func (w *World) PlayerBody() (core.Entity, *component.Body, bool) {
	b, ok := w.Entities.Get(w.Player)
	return w.Player, b, ok
}

// Spawn inserts a body and registers it in the tile under its position, if revealed
func (w *World) Spawn(body component.Body) core.Entity {
	e := w.Entities.Insert(body)
	if tile, ok := w.Tiles.Get(CellOf(body.Pos)); ok {
		tile.Add(e)
	}
	return e
}

// Despawn evicts the entity from its tile and then from the store
// Returns false for stale handles
func (w *World) Despawn(e core.Entity) bool {
	b, ok := w.Entities.Get(e)
	if !ok {
		return false
	}
	if tile, ok := w.Tiles.Get(CellOf(b.Pos)); ok {
		tile.Remove(e)
	}
	return w.Entities.Remove(e)
}

// Clear removes every entity and tile and resets the player handle
// Pending events are kept
func (w *World) Clear() {
	w.Entities.Clear()
	w.Tiles.Clear()
	w.Player = core.NilEntity
}
