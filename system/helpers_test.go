package system

import (
	"testing"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// counter tallies events of the given types without acting on them
type counter struct {
	types  []event.EventType
	counts map[event.EventType]int
	seen   []event.GameEvent
}

func newCounter(types ...event.EventType) *counter {
	return &counter{types: types, counts: make(map[event.EventType]int)}
}

func (c *counter) Name() string { return "counter" }

func (c *counter) Priority() int { return 1000 }

func (c *counter) EventTypes() []event.EventType { return c.types }

func (c *counter) HandleEvent(_ *engine.Context, ev event.GameEvent) {
	c.counts[ev.Type]++
	c.seen = append(c.seen, ev)
}

// newRouter registers the given systems on a fresh router
func newRouter(systems ...engine.System) *engine.Router {
	r := engine.NewRouter(0)
	for _, s := range systems {
		r.Register(s)
	}
	return r
}

// revealSquare inserts empty tiles covering [-r, r] around c
func revealSquare(w *engine.World, c engine.Cell, r int) {
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			w.Tiles.Insert(engine.Cell{X: x, Y: y}, engine.Tile{})
		}
	}
}

// spawnAt creates a variant body through the spawn defaults
func spawnAt(t *testing.T, ctx *engine.Context, v component.Variant, x, y float64) (core.Entity, *component.Body) {
	t.Helper()
	e := ctx.World.Spawn(NewBody(ctx, v, vmath.Vec3{X: x, Y: y}))
	if v == component.VariantPlayer {
		ctx.World.Player = e
	}
	b, ok := ctx.World.Entity(e)
	if !ok {
		t.Fatalf("Spawned %s did not resolve", v)
	}
	return e, b
}

func tick(ctx *engine.Context, r *engine.Router, dt float64) {
	ctx.PushEvent(event.EventTick, event.TickPayload{DT: dt})
	r.Drain(ctx)
}
