package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/status"
)

// AbilityHitSystem turns a landed hit into damage; hits on the player start the screen flash
type AbilityHitSystem struct {
	statHits *atomic.Int64
}

func NewAbilityHitSystem(ctx *engine.Context) *AbilityHitSystem {
	return &AbilityHitSystem{
		statHits: ctx.Status.Ints.Get(status.KeyAbilityHits),
	}
}

func (s *AbilityHitSystem) Name() string {
	return "ability_hit"
}

func (s *AbilityHitSystem) Priority() int {
	return parameter.PriorityAbilityHit
}

func (s *AbilityHitSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventAbilityHit}
}

func (s *AbilityHitSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	p, ok := ev.Payload.(event.AbilityHitPayload)
	if !ok {
		return
	}
	target, ok := ctx.World.Entity(p.Target)
	if !ok {
		return
	}

	s.statHits.Add(1)
	ctx.PushEvent(event.EventApplyDamage, event.ApplyDamagePayload{
		Target: p.Target,
		Source: p.Attacker,
		Amount: parameter.HitDamage,
	})

	if p.Target == ctx.World.Player {
		target.Flash.Restart()
	}
	ctx.Host.PlaySound(core.SoundHit)
}
