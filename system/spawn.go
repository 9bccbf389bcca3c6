package system

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/status"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// SpawnSystem creates entities with variant defaults
// A Player spawn becomes the world's player handle
type SpawnSystem struct {
	statSpawned *atomic.Int64
	statLive    *atomic.Int64
}

func NewSpawnSystem(ctx *engine.Context) *SpawnSystem {
	return &SpawnSystem{
		statSpawned: ctx.Status.Ints.Get(status.KeyEntitySpawned),
		statLive:    ctx.Status.Ints.Get(status.KeyEntityLive),
	}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSpawn}
}

func (s *SpawnSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	p, ok := ev.Payload.(event.SpawnPayload)
	if !ok {
		return
	}

	body := NewBody(ctx, p.Variant, p.Pos)
	e := ctx.World.Spawn(body)
	if p.Variant == component.VariantPlayer {
		ctx.World.Player = e
	}

	s.statSpawned.Add(1)
	s.statLive.Store(int64(ctx.World.Entities.Len()))

	ctx.Log.WithFields(logrus.Fields{
		"entity":  e.String(),
		"variant": p.Variant.String(),
	}).Trace("spawned")
}

// NewBody builds a body at pos with the shared defaults and the variant's overrides
// Tree footprints draw from the context's random source
func NewBody(ctx *engine.Context, variant component.Variant, pos vmath.Vec3) component.Body {
	b := component.Body{
		Pos:        pos,
		Variant:    variant,
		Texture:    component.TextureNone,
		Frame:      component.FrameDefault,
		Solid:      true,
		Radius:     parameter.DefaultRadius,
		SpriteSize: vmath.Vec2{X: parameter.DefaultSpriteWidth, Y: parameter.DefaultSpriteHeight},
		Ability: component.AbilityComponent{
			Total:       parameter.DefaultAbilityTotal,
			ActivatesAt: parameter.DefaultAbilityTrigger,
		},
		BobSpeed: parameter.DefaultBobSpeed,
		Health:   component.Indestructible(),
		Tint:     core.RGBAWhite,
		Flash:    component.NewTimer(parameter.FlashDuration, false),
	}

	switch variant {
	case component.VariantPlayer:
		b.Texture = component.TexturePlayer
		b.Health = component.NewHealth(parameter.PlayerHealth)
		b.MaxSpeed = parameter.PlayerMaxSpeed
		b.BobSpeed = parameter.PlayerBobSpeed
		b.Ability.Total = parameter.PlayerAbilityTotal
		b.Ability.ActivatesAt = parameter.PlayerAbilityTrigger
		b.Flash = component.NewTimer(parameter.DamageFlashDuration, false)

	case component.VariantTree:
		b.Texture = component.TextureTree
		b.Radius = parameter.TreeRadius
		b.SpriteSize = vmath.Vec2{
			X: ctx.RandRange(parameter.TreeSpriteWidthMin, parameter.TreeSpriteWidthMax),
			Y: ctx.RandRange(parameter.TreeSpriteHeightMin, parameter.TreeSpriteHeightMax),
		}
		b.Label = parameter.TreeLabel

	case component.VariantZombie:
		b.Texture = component.TextureZombie
		b.SpriteSize = vmath.Vec2{X: parameter.ZombieSpriteWidth, Y: parameter.ZombieSpriteHeight}
		b.MaxSpeed = parameter.ZombieMaxSpeed
		b.BobSpeed = parameter.ZombieBobSpeed
		b.Health = component.NewHealth(parameter.ZombieHealth)
		b.Label = parameter.ZombieLabel
	}
	return b
}
