package system

import (
	"math"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// MovementSystem integrates velocity, resolves overlap with solid neighbors and drives the walk cycle
// Only the mover is displaced, along the axis separating it from each overlapping solid neighbor
type MovementSystem struct {
	handles    []core.Entity
	near       []core.Entity
	collisions []core.Entity
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTick}
}

func (s *MovementSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	dt, ok := tickDT(ev)
	if !ok {
		return
	}

	s.handles = ctx.World.Entities.Handles(s.handles[:0])
	for _, e := range s.handles {
		b, ok := ctx.World.Entity(e)
		if !ok {
			continue
		}

		vel := vmath.V3Scale(b.MoveDir, dt*b.MaxSpeed)
		if vmath.V3IsZero(vel) {
			s.settle(b)
			continue
		}
		s.move(ctx, e, b, vel)
	}
}

// settle decays the walk bob of an idle body
func (s *MovementSystem) settle(b *component.Body) {
	if !b.AbilityInProgress() && !b.Dead() {
		b.Frame = component.FrameDefault
	}
	if b.BobPhase == 0 {
		return
	}
	b.BobPhase *= parameter.BobDecay
	if math.Abs(b.BobPhase) < parameter.BobSnap {
		b.BobPhase = 0
		b.DistanceTotal = 0
	}
}

func (s *MovementSystem) move(ctx *engine.Context, e core.Entity, b *component.Body, vel vmath.Vec3) {
	w := ctx.World
	if tile, ok := w.Tiles.Get(engine.CellOf(b.Pos)); ok {
		tile.Remove(e)
	}

	candidate := vmath.V3Add(b.Pos, vel)
	s.collisions = s.collisions[:0]

	if b.Solid {
		s.near = w.Tiles.EntitiesNear(engine.CellOf(candidate), parameter.CollisionSearchRadius, s.near[:0])
		for _, o := range s.near {
			if o == e {
				continue
			}
			other, ok := w.Entity(o)
			if !ok || !other.Solid {
				continue
			}

			away := vmath.V2Sub(vmath.V3XY(candidate), vmath.V3XY(other.Pos))
			dist := vmath.V2Mag(away)
			minDist := b.Radius + other.Radius
			// Exact overlap has no separating axis and is left unresolved
			if dist <= 0 || dist >= minDist {
				continue
			}

			push := vmath.V2Scale(away, (minDist-dist)/dist)
			candidate.X += push.X
			candidate.Y += push.Y
			s.collisions = append(s.collisions, o)
		}
	}

	moved := vmath.V3Mag(vmath.V3Sub(candidate, b.Pos))
	b.Pos = candidate
	b.DistanceTotal += moved * b.BobSpeed

	prev := b.BobPhase
	b.BobPhase = math.Sin(b.DistanceTotal)
	if math.Signbit(prev) != math.Signbit(b.BobPhase) && !b.AbilityInProgress() && !b.Dead() {
		if prev < 0 {
			b.Frame = component.FrameWalk1
		} else {
			b.Frame = component.FrameWalk2
		}
	}

	if tile, ok := w.Tiles.Get(engine.CellOf(b.Pos)); ok {
		tile.Add(e)
	}

	for _, o := range s.collisions {
		ctx.PushEvent(event.EventCollision, event.CollisionPayload{Entity: e, Other: o})
	}
}
