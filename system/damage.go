package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
)

// DamageSystem applies damage to damageable entities and handles death
// Death puts the body in its corpse state and requests exactly one Despawn
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Name() string {
	return "damage"
}

func (s *DamageSystem) Priority() int {
	return parameter.PriorityDamage
}

func (s *DamageSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventApplyDamage}
}

func (s *DamageSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	p, ok := ev.Payload.(event.ApplyDamagePayload)
	if !ok {
		return
	}
	b, ok := ctx.World.Entity(p.Target)
	if !ok || !b.Health.CanReceiveDamage || b.Dead() {
		return
	}

	b.Health.ApplyDamage(p.Amount)
	if b.AbilityInProgress() {
		b.ResetAbility()
		b.Frame = component.FrameDefault
	}
	b.Tint = core.RGBARed
	b.Flash.Restart()

	if b.Health.IsAlive() {
		return
	}

	b.Kill()
	ctx.PushEvent(event.EventDespawn, event.EntityPayload{Entity: p.Target})
	ctx.Host.PlaySound(core.SoundDeath)
	ctx.Log.WithFields(logrus.Fields{
		"entity": p.Target.String(),
		"source": p.Source.String(),
	}).Debug("killed")
}
