package system

import (
	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
)

// FlashSystem advances hit-flash timers and fades damaged tints from red back to white
type FlashSystem struct{}

func NewFlashSystem() *FlashSystem {
	return &FlashSystem{}
}

func (s *FlashSystem) Name() string {
	return "flash"
}

func (s *FlashSystem) Priority() int {
	return parameter.PriorityFlash
}

func (s *FlashSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTick}
}

func (s *FlashSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	dt, ok := tickDT(ev)
	if !ok {
		return
	}

	ctx.World.Entities.Range(func(_ core.Entity, b *component.Body) bool {
		b.Flash.Tick(dt)
		b.Tint = FlashTint(b.Flash)
		return true
	})
}

// FlashTint returns red blended toward white by timer progress, white once finished
func FlashTint(t component.TimerComponent) core.RGBA {
	if t.Finished() {
		return core.RGBAWhite
	}
	return core.RGBARed.Blend(core.RGBAWhite, t.Progress())
}
