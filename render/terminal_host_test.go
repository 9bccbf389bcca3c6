package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/vmath"
)

var _ engine.Host = (*TerminalHost)(nil)

type cueRecorder struct {
	cues []core.SoundCue
}

func (r *cueRecorder) Play(cue core.SoundCue) {
	r.cues = append(r.cues, cue)
}

// newSimHost returns a host on a 40x21 simulation screen; the world view is 40x20 with the camera cell at column 20, row 10
func newSimHost(t *testing.T, sounds SoundPlayer) *TerminalHost {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 21)
	return NewTerminalHost(screen, sounds)
}

func TestPresentRasterizesTilesSpritesAndLabels(t *testing.T) {
	h := newSimHost(t, nil)

	origin := vmath.Vec3{X: 0.5, Y: 0.5}
	h.DrawTile(origin, component.TextureGrass, component.FrameDefault, core.RGBAWhite)
	h.DrawTile(vmath.Vec3{X: 1.5, Y: 0.5}, component.TextureGrass, component.FrameDefault, core.RGBAWhite.Scale(0.5).WithAlpha(0.5))
	h.DrawSprite(origin, component.TexturePlayer, component.FrameDefault, core.RGBAWhite, vmath.Vec2{X: 1, Y: 1})
	h.DrawText(vmath.Vec3{X: 0.5, Y: 0.5, Z: 1.25}, "hi", core.RGBAWhite)

	if h.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", h.Pending())
	}
	h.Present(origin, "ok")
	if h.Pending() != 0 {
		t.Errorf("Present left %d intents queued", h.Pending())
	}

	buf := h.Buffer()
	player := buf.Get(20, 10)
	if player.Rune != '@' || player.Fg != (RGB{255, 255, 255}) {
		t.Errorf("Player cell = %+v", player)
	}
	if player.Bg != RgbGrass {
		t.Errorf("Sprite lost tile background: %+v", player.Bg)
	}
	if side := buf.Get(21, 10); side.Bg != RgbGrass {
		t.Errorf("Tile second column bg = %+v", side.Bg)
	}

	dim := buf.Get(22, 10)
	if want := (RGB{23, 46, 20}); dim.Bg != want {
		t.Errorf("Half-lit tile bg = %+v, want %+v", dim.Bg, want)
	}

	if buf.Get(20, 8).Rune != 'h' || buf.Get(21, 8).Rune != 'i' {
		t.Errorf("Label not two rows above sprite: %q%q", buf.Get(20, 8).Rune, buf.Get(21, 8).Rune)
	}

	if status := buf.Get(0, 20); status.Rune != 'o' || status.Bg != RgbStatusBg {
		t.Errorf("Status cell = %+v", status)
	}
}

func TestPresentFollowsCamera(t *testing.T) {
	h := newSimHost(t, nil)

	h.DrawSprite(vmath.Vec3{X: 3.5, Y: -1.5}, component.TextureZombie, component.FrameAttack, core.RGBARed, vmath.Vec2{X: 1, Y: 1})
	h.Present(vmath.Vec3{X: 2.5, Y: -0.5}, "")

	// One cell right, one row up of the camera cell
	g := h.Buffer().Get(22, 9)
	if g.Rune != 'Z' || h.Buffer().Get(23, 9).Rune != '/' {
		t.Errorf("Zombie glyph = %q%q", g.Rune, h.Buffer().Get(23, 9).Rune)
	}
	if g.Fg != (RGB{255, 0, 0}) {
		t.Errorf("Zombie fg = %+v", g.Fg)
	}
}

func TestPresentClipsOffscreenIntents(t *testing.T) {
	h := newSimHost(t, nil)

	far := vmath.Vec3{X: 500, Y: -500}
	h.DrawTile(far, component.TextureGrass, component.FrameDefault, core.RGBAWhite)
	h.DrawSprite(far, component.TextureTree, component.FrameDefault, core.RGBAWhite, vmath.Vec2{X: 1, Y: 2})
	h.DrawText(far, "far", core.RGBAWhite)
	h.Present(vmath.Vec3{}, "")

	w, ht := h.Buffer().Bounds()
	for y := 0; y < ht-1; y++ {
		for x := 0; x < w; x++ {
			if c := h.Buffer().Get(x, y); c.Rune != ' ' || c.Bg != RgbBackground {
				t.Fatalf("Offscreen intent drawn at %d,%d: %+v", x, y, c)
			}
		}
	}
}

func TestFlashOverlaysWholeView(t *testing.T) {
	h := newSimHost(t, nil)

	h.DrawTile(vmath.Vec3{X: 0.5, Y: 0.5}, component.TextureGrass, component.FrameDefault, core.RGBAWhite)
	h.DrawFlash(core.RGBARed.WithAlpha(1))
	h.Present(vmath.Vec3{X: 0.5, Y: 0.5}, "")

	red := RGB{255, 0, 0}
	if c := h.Buffer().Get(20, 10); c.Bg != red {
		t.Errorf("Flashed tile bg = %+v", c.Bg)
	}
	if c := h.Buffer().Get(0, 0); c.Bg != red {
		t.Errorf("Flashed empty cell bg = %+v", c.Bg)
	}

	// Zero alpha leaves the frame untouched
	h.DrawFlash(core.RGBABlack.WithAlpha(0))
	h.Present(vmath.Vec3{}, "")
	if c := h.Buffer().Get(0, 0); c.Bg != RgbBackground {
		t.Errorf("Zero-alpha flash changed bg to %+v", c.Bg)
	}
}

func TestPlaySoundForwards(t *testing.T) {
	rec := &cueRecorder{}
	h := newSimHost(t, rec)

	h.PlaySound(core.SoundSwing)
	h.PlaySound(core.SoundDeath)
	if len(rec.cues) != 2 || rec.cues[0] != core.SoundSwing || rec.cues[1] != core.SoundDeath {
		t.Errorf("Forwarded cues = %v", rec.cues)
	}
	if h.Pending() != 0 {
		t.Error("Sounds must not queue draw intents")
	}

	silent := newSimHost(t, nil)
	silent.PlaySound(core.SoundHit)
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		texture component.Texture
		frame   component.Frame
		want    Glyph
	}{
		{component.TexturePlayer, component.FrameDefault, Glyph{'@', ' '}},
		{component.TexturePlayer, component.FrameWalk2, Glyph{'@', ','}},
		{component.TextureZombie, component.FrameReadyAttack, Glyph{'Z', '|'}},
		{component.TextureTree, component.FrameDefault, Glyph{'♣', '♣'}},
		{component.TextureZombie, component.FrameDead, Glyph{'x', ' '}},
		{component.TextureNone, component.FrameDefault, Glyph{'?', ' '}},
	}
	for _, tt := range tests {
		if got := GlyphFor(tt.texture, tt.frame); got != tt.want {
			t.Errorf("GlyphFor(%v, %v) = %q, want %q", tt.texture, tt.frame, got, tt.want)
		}
	}
}

func TestRenderBufferResizeAndBounds(t *testing.T) {
	b := NewRenderBuffer(4, 3)
	b.SetWithBg(3, 2, 'a', RGB{1, 2, 3}, RGB{4, 5, 6})
	if c := b.Get(3, 2); c.Rune != 'a' || c.Bg != (RGB{4, 5, 6}) {
		t.Errorf("Set cell = %+v", c)
	}
	b.SetWithBg(4, 0, 'b', RGB{}, RGB{})
	b.SetWithBg(-1, 0, 'b', RGB{}, RGB{})

	b.Resize(2, 2)
	if w, h := b.Bounds(); w != 2 || h != 2 {
		t.Errorf("Bounds = %d,%d", w, h)
	}
	if c := b.Get(1, 1); c.Rune != ' ' {
		t.Errorf("Resize did not clear: %+v", c)
	}
	if c := b.Get(5, 5); c != (Cell{}) {
		t.Errorf("Out of bounds Get = %+v", c)
	}
}
