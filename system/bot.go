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

// BotSystem steers zombies toward the player and attacks on contact
type BotSystem struct{}

func NewBotSystem() *BotSystem {
	return &BotSystem{}
}

func (s *BotSystem) Name() string {
	return "bot"
}

func (s *BotSystem) Priority() int {
	return parameter.PriorityBot
}

func (s *BotSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTick}
}

func (s *BotSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	_, player, ok := ctx.World.PlayerBody()
	if !ok {
		return
	}
	target := vmath.V3XY(player.Pos)

	ctx.World.Entities.Range(func(_ core.Entity, b *component.Body) bool {
		if b.Variant != component.VariantZombie || b.Dead() {
			return true
		}

		toPlayer := vmath.V2Sub(target, vmath.V3XY(b.Pos))
		dist := vmath.V2Mag(toPlayer)

		// Facing also tracks the player during contact, not only while chasing, so the swing points at it
		if dist > 0 {
			b.Facing = math.Atan2(toPlayer.Y, toPlayer.X)
		}

		switch {
		case dist <= b.Radius+parameter.PlayerContactRadius:
			b.ActivateAbility()
			b.MoveDir = vmath.Vec3{}
		case dist > 0:
			dir := vmath.V2Scale(toPlayer, 1/dist)
			b.MoveDir = vmath.Vec3{X: dir.X, Y: dir.Y}
		}
		return true
	})
}
