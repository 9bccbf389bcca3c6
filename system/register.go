package system

import (
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
)

// Options tunes the systems that take configuration
type Options struct {
	MapGenHalfWidth int
}

// All constructs every gameplay system
func All(ctx *engine.Context, opts Options) []engine.System {
	return []engine.System{
		NewRestartSystem(ctx),
		NewSpawnSystem(ctx),
		NewDespawnSystem(ctx),
		NewInputSystem(),
		NewMapGenSystem(ctx, opts.MapGenHalfWidth),
		NewTileMapSystem(),
		NewBotSystem(),
		NewMovementSystem(),
		NewCollisionSystem(ctx),
		NewAbilitySystem(),
		NewAbilityActivatedSystem(),
		NewAbilityHitSystem(ctx),
		NewDamageSystem(),
		NewFlashSystem(),
		NewRenderSystem(ctx),
	}
}

// Register builds every system and registers it with the router
func Register(router *engine.Router, ctx *engine.Context, opts Options) {
	for _, sys := range All(ctx, opts) {
		router.Register(sys)
	}
}

// Frame runs one host frame. PlayerInput (when non-nil) and Tick drain to
// completion before PostTick is queued, so PostTick observes every event the
// Tick cascaded into.
func Frame(router *engine.Router, ctx *engine.Context, input *event.PlayerInputPayload, dt float64) {
	if input != nil {
		ctx.PushEvent(event.EventPlayerInput, *input)
	}
	ctx.PushEvent(event.EventTick, event.TickPayload{DT: dt})
	router.Drain(ctx)

	ctx.PushEvent(event.EventPostTick, event.TickPayload{DT: dt})
	router.Drain(ctx)
}
