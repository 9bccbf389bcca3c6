package system

import (
	"testing"

	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/status"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// TestSimulationFrames drives the full system set the way the host does
func TestSimulationFrames(t *testing.T) {
	ctx, host := engine.NewTestContext(engine.NewFastRand(7))
	router := engine.NewRouter(0)
	Register(router, ctx, Options{MapGenHalfWidth: 4})

	ctx.PushEvent(event.EventRestart, nil)
	router.Drain(ctx)

	const dt = 1.0 / 60
	for frame := 0; frame < 240; frame++ {
		ctx.World.AdvanceFrame()
		Frame(router, ctx, &event.PlayerInputPayload{
			Player:     ctx.World.Player,
			MoveDir:    vmath.Vec3{X: 1},
			Facing:     0,
			UseAbility: frame%30 == 0,
		}, dt)

		if ctx.World.Events().Len() != 0 {
			t.Fatalf("Frame %d left %d events queued", frame, ctx.World.Events().Len())
		}
	}

	if ctx.World.Tiles.Len() < 81 {
		t.Errorf("Expected at least the initial 9x9 reveal, got %d tiles", ctx.World.Tiles.Len())
	}
	if got := ctx.Status.Int(status.KeyEntityLive); got != int64(ctx.World.Entities.Len()) {
		t.Errorf("entity.live = %d, store has %d", got, ctx.World.Entities.Len())
	}
	spawned := ctx.Status.Int(status.KeyEntitySpawned)
	despawned := ctx.Status.Int(status.KeyEntityDespawned)
	if spawned-despawned != int64(ctx.World.Entities.Len()) {
		t.Errorf("spawned %d - despawned %d != live %d", spawned, despawned, ctx.World.Entities.Len())
	}
	if host.Count(engine.IntentTile) == 0 {
		t.Error("No tiles were drawn")
	}

	// Every occupant set matches entity positions after a tick
	ctx.World.Tiles.Range(func(c engine.Cell, tile *engine.Tile) bool {
		for _, e := range tile.Entities {
			b, ok := ctx.World.Entity(e)
			if !ok {
				t.Errorf("Tile %v holds stale handle %v", c, e)
				continue
			}
			if engine.CellOf(b.Pos) != c {
				t.Errorf("Entity %v at %v listed in tile %v", e, b.Pos, c)
			}
		}
		return true
	})
}
