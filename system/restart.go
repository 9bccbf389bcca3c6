package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/status"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// RestartSystem wipes the world and requests a fresh player at the origin
type RestartSystem struct {
	statLive *atomic.Int64
}

func NewRestartSystem(ctx *engine.Context) *RestartSystem {
	return &RestartSystem{
		statLive: ctx.Status.Ints.Get(status.KeyEntityLive),
	}
}

func (s *RestartSystem) Name() string {
	return "restart"
}

func (s *RestartSystem) Priority() int {
	return parameter.PriorityRestart
}

func (s *RestartSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventRestart}
}

func (s *RestartSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	w := ctx.World
	w.Clear()
	w.Fade = component.NewTimer(parameter.FadeInDuration, true)
	s.statLive.Store(0)

	ctx.PushEvent(event.EventSpawn, event.SpawnPayload{
		Pos:     vmath.Vec3{},
		Variant: component.VariantPlayer,
	})
	ctx.Log.WithField("frame", ev.Frame).Debug("world restarted")
}
