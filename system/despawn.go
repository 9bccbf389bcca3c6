package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/status"
)

// DespawnSystem removes entities from their tile and then from the store
// Stale handles are ignored; a despawned player leaves the handle dangling
type DespawnSystem struct {
	statDespawned *atomic.Int64
	statLive      *atomic.Int64
}

func NewDespawnSystem(ctx *engine.Context) *DespawnSystem {
	return &DespawnSystem{
		statDespawned: ctx.Status.Ints.Get(status.KeyEntityDespawned),
		statLive:      ctx.Status.Ints.Get(status.KeyEntityLive),
	}
}

func (s *DespawnSystem) Name() string {
	return "despawn"
}

func (s *DespawnSystem) Priority() int {
	return parameter.PriorityDespawn
}

func (s *DespawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventDespawn}
}

func (s *DespawnSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	p, ok := ev.Payload.(event.EntityPayload)
	if !ok {
		return
	}
	if !ctx.World.Despawn(p.Entity) {
		return
	}

	s.statDespawned.Add(1)
	s.statLive.Store(int64(ctx.World.Entities.Len()))
	ctx.Log.WithField("entity", p.Entity.String()).Trace("despawned")
}
