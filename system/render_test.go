package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/status"
	"github.com/lixenwraith/tile-survivor/vmath"
)

func TestLight(t *testing.T) {
	tests := []struct {
		d, want float64
	}{
		{0, 1},
		{4, 0.2},
		{7, 1.0 / (1 + 16*0.875*0.875) * 0.125 / 0.2},
		{8, 0},
		{12, 0},
	}
	for _, tt := range tests {
		if got := Light(tt.d); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Light(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestRenderDrawsLitArea(t *testing.T) {
	ctx, host := engine.NewTestContext(nil)
	router := newRouter(NewRenderSystem(ctx))

	revealSquare(ctx.World, engine.Cell{}, 1)
	ctx.World.Tiles.Insert(engine.Cell{X: 20, Y: 20}, engine.Tile{})

	spawnAt(t, ctx, component.VariantPlayer, 0.5, 0.5)
	spawnAt(t, ctx, component.VariantZombie, 1.5, 0.5)
	spawnAt(t, ctx, component.VariantZombie, 20.5, 20.5)

	ctx.PushEvent(event.EventPostTick, event.TickPayload{DT: 0.1})
	router.Drain(ctx)

	if got := host.Count(engine.IntentTile); got != 9 {
		t.Errorf("Drew %d tiles, want 9", got)
	}
	if got := host.Count(engine.IntentSprite); got != 2 {
		t.Errorf("Drew %d sprites, want 2", got)
	}
	if got := host.Count(engine.IntentText); got != 1 {
		t.Errorf("Drew %d labels, want 1", got)
	}
	if got := host.Count(engine.IntentFlash); got != 0 {
		t.Errorf("Drew %d flashes, want none", got)
	}

	for _, in := range host.Intents {
		switch in.Kind {
		case engine.IntentSprite:
			if in.Texture == component.TexturePlayer && in.Color.R != 1 {
				t.Errorf("Player at the light center drawn with %v", in.Color)
			}
		case engine.IntentText:
			if in.Text != "Zombie" || in.Origin.Z <= 1 {
				t.Errorf("Label %q at %v", in.Text, in.Origin)
			}
		case engine.IntentTile:
			if in.Origin == (vmath.Vec3{X: 20.5, Y: 20.5}) {
				t.Error("Tile outside draw radius was drawn")
			}
		}
	}

	if !ctx.Status.Bools.Get(status.KeyPlayerAlive).Load() {
		t.Error("player.alive not published")
	}
	if got := ctx.Status.Strings.Get(status.KeyPlayerFrame).Load(); got != component.FrameDefault.String() {
		t.Errorf("player.frame = %q", got)
	}
}

func TestRenderFadeIn(t *testing.T) {
	ctx, host := engine.NewTestContext(nil)
	router := newRouter(NewRenderSystem(ctx))
	spawnAt(t, ctx, component.VariantPlayer, 0, 0)
	ctx.World.Fade = component.NewTimer(1.0, true)

	var alphas []float64
	for i := 0; i < 5; i++ {
		host.Reset()
		ctx.PushEvent(event.EventPostTick, event.TickPayload{DT: 0.25})
		router.Drain(ctx)
		for _, in := range host.Intents {
			if in.Kind == engine.IntentFlash {
				alphas = append(alphas, in.Color.A)
			}
		}
	}

	want := []float64{0.75, 0.5, 0.25}
	if len(alphas) != len(want) {
		t.Fatalf("Fade alphas = %v, want %v", alphas, want)
	}
	for i := range want {
		if math.Abs(alphas[i]-want[i]) > 1e-12 {
			t.Errorf("Fade alphas = %v, want %v", alphas, want)
			break
		}
	}
}
