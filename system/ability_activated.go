package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// AbilityActivatedSystem resolves a melee swing against every other entity
// The blade is a segment along the attacker's facing; each target is an edge segment
// across its radius, perpendicular to the facing. The first hit in store order wins
type AbilityActivatedSystem struct{}

func NewAbilityActivatedSystem() *AbilityActivatedSystem {
	return &AbilityActivatedSystem{}
}

func (s *AbilityActivatedSystem) Name() string {
	return "ability_activated"
}

func (s *AbilityActivatedSystem) Priority() int {
	return parameter.PriorityAbilityActivated
}

func (s *AbilityActivatedSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventAbilityActivated}
}

func (s *AbilityActivatedSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	p, ok := ev.Payload.(event.EntityPayload)
	if !ok {
		return
	}
	attacker, ok := ctx.World.Entity(p.Entity)
	if !ok || attacker.Dead() {
		return
	}

	ctx.Host.PlaySound(core.SoundSwing)

	facing := attacker.Facing
	blade := vmath.SweepSegment(vmath.V3XY(attacker.Pos), facing, parameter.BladeLength)

	var target core.Entity
	ctx.World.Entities.Range(func(e core.Entity, b *component.Body) bool {
		if e == p.Entity || b.Dead() {
			return true
		}
		edge := vmath.EdgeSegment(vmath.V3XY(b.Pos), facing, b.Radius)
		if _, hit := vmath.SegmentIntersect(blade, edge); hit {
			target = e
			return false
		}
		return true
	})

	if target.IsNil() {
		return
	}
	ctx.PushEvent(event.EventAbilityHit, event.AbilityHitPayload{Attacker: p.Entity, Target: target})
	ctx.Log.WithFields(logrus.Fields{
		"attacker": p.Entity.String(),
		"target":   target.String(),
	}).Debug("ability hit")
}
