package system

import (
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// InputSystem applies host input to the player body
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPlayerInput}
}

func (s *InputSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	p, ok := ev.Payload.(event.PlayerInputPayload)
	if !ok {
		return
	}
	b, ok := ctx.World.Entity(p.Player)
	if !ok || b.Dead() {
		return
	}

	b.MoveDir = vmath.V3Normalize(p.MoveDir)
	b.Facing = p.Facing
	if p.UseAbility {
		b.ActivateAbility()
	}
}
