package system

import (
	"sync/atomic"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/parameter"
	"github.com/lixenwraith/tile-survivor/status"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// RenderSystem emits draw intents for the lit area around the player on PostTick
// Tiles first, then their occupants with labels, then the fade and damage overlays
type RenderSystem struct {
	drawn []engine.Cell

	statAlive  *atomic.Bool
	statHealth *status.AtomicFloat
	statFrame  *status.AtomicString
}

func NewRenderSystem(ctx *engine.Context) *RenderSystem {
	return &RenderSystem{
		statAlive:  ctx.Status.Bools.Get(status.KeyPlayerAlive),
		statHealth: ctx.Status.Floats.Get(status.KeyPlayerHealth),
		statFrame:  ctx.Status.Strings.Get(status.KeyPlayerFrame),
	}
}

func (s *RenderSystem) Name() string {
	return "render"
}

func (s *RenderSystem) Priority() int {
	return parameter.PriorityRender
}

func (s *RenderSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPostTick}
}

func (s *RenderSystem) HandleEvent(ctx *engine.Context, ev event.GameEvent) {
	dt, ok := tickDT(ev)
	if !ok {
		return
	}
	_, player, ok := ctx.World.PlayerBody()
	if !ok {
		s.statAlive.Store(false)
		return
	}
	s.publish(player)

	host := ctx.Host
	center := engine.CellOf(player.Pos)
	eye := vmath.V3XY(player.Pos)

	s.drawn = s.drawn[:0]
	for y := center.Y - parameter.DrawRadius; y <= center.Y+parameter.DrawRadius; y++ {
		for x := center.X - parameter.DrawRadius; x <= center.X+parameter.DrawRadius; x++ {
			cell := engine.Cell{X: x, Y: y}
			if !ctx.World.Tiles.Has(cell) {
				continue
			}
			origin := cell.Center()
			c := Light(vmath.V2Mag(vmath.V2Sub(vmath.V3XY(origin), eye)))
			host.DrawTile(origin, component.TextureGrass, component.FrameDefault, core.RGBAWhite.Scale(c).WithAlpha(c))
			s.drawn = append(s.drawn, cell)
		}
	}

	for _, cell := range s.drawn {
		tile, _ := ctx.World.Tiles.Get(cell)
		for _, e := range tile.Entities {
			b, ok := ctx.World.Entity(e)
			if !ok {
				continue
			}
			c := Light(vmath.V2Mag(vmath.V2Sub(vmath.V3XY(b.Pos), eye)))
			host.DrawSprite(b.Pos, b.Texture, b.Frame, b.Tint.Scale(c).WithAlpha(1), b.SpriteSize)
			if b.Label != "" {
				labelPos := b.Pos
				labelPos.Z += b.SpriteSize.Y + parameter.LabelOffset
				host.DrawText(labelPos, b.Label, core.RGBA{R: c, G: c, B: c, A: 1})
			}
		}
	}

	fade := &ctx.World.Fade
	fade.Tick(dt)
	if alpha := 1 - fade.Progress(); alpha > 0 {
		host.DrawFlash(core.RGBABlack.WithAlpha(alpha))
	}

	if player.Flash.Running {
		host.DrawFlash(core.RGBARed.WithAlpha(parameter.DamageFlashAlpha * (1 - player.Flash.Progress())))
	}
}

func (s *RenderSystem) publish(player *component.Body) {
	s.statAlive.Store(!player.Dead())
	s.statHealth.Store(player.Health.Current)
	s.statFrame.Store(player.Frame.String())
}

// Light returns brightness in [0,1] at distance d from the player
// Inverse-square falloff 1/(1+k*n^2) over normalized distance n, faded linearly to zero near the view edge
func Light(d float64) float64 {
	n := d / parameter.ViewRadius
	if n >= 1 {
		return 0
	}
	attenuation := 1 / (1 + parameter.LightFalloff*n*n)
	if edge := 1 - parameter.LightEdgeSoftness; n > edge {
		return attenuation * (1 - n) / parameter.LightEdgeSoftness
	}
	return attenuation
}
