package system

import (
	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
)

// AbilitySystem counts ability cooldowns down and fires activation when the trigger point is crossed
// Also drives the attack animation: ReadyAttack before the trigger, Attack after, Default when idle
type AbilitySystem struct {
	handles []core.Entity
}

func NewAbilitySystem() *AbilitySystem {
	return &AbilitySystem{}
}

func (s *AbilitySystem) Name() string {
	return "ability"
}

func (s *AbilitySystem) Priority() int {
	return parameter.PriorityAbility
}

func (s *AbilitySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTick}
}

func (s *AbilitySystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	dt, ok := tickDT(ev)
	if !ok {
		return
	}

	s.handles = ctx.World.Entities.Handles(s.handles[:0])
	for _, e := range s.handles {
		b, ok := ctx.World.Entity(e)
		if !ok || !b.AbilityInProgress() {
			continue
		}

		if b.Ability.Advance(dt) {
			ctx.PushEvent(event.EventAbilityActivated, event.EntityPayload{Entity: e})
		}

		if b.Dead() {
			continue
		}
		switch {
		case b.Ability.Timer > b.Ability.ActivatesAt:
			b.Frame = component.FrameReadyAttack
		case b.Ability.Timer > 0:
			b.Frame = component.FrameAttack
		default:
			b.Frame = component.FrameDefault
		}
	}
}
