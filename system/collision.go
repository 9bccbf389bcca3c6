package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/status"
)

// CollisionSystem observes push-out contacts; it has no gameplay effect
type CollisionSystem struct {
	statCollisions *atomic.Int64
}

func NewCollisionSystem(ctx *engine.Context) *CollisionSystem {
	return &CollisionSystem{
		statCollisions: ctx.Status.Ints.Get(status.KeyCollisionCount),
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCollision}
}

func (s *CollisionSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	p, ok := ev.Payload.(event.CollisionPayload)
	if !ok {
		return
	}
	a, ok := ctx.World.Entity(p.Entity)
	if !ok {
		return
	}
	b, ok := ctx.World.Entity(p.Other)
	if !ok {
		return
	}

	s.statCollisions.Add(1)
	ctx.Log.WithFields(logrus.Fields{
		"entity": a.Variant.String(),
		"other":  b.Variant.String(),
	}).Trace("collision")
}
