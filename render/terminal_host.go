package render

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// CellColumns is the terminal width of one world cell; terminal cells are roughly twice as tall as wide
const CellColumns = 2

// SoundPlayer receives sound cues forwarded by the host
type SoundPlayer interface {
	Play(cue core.SoundCue)
}

// TerminalHost implements engine.Host on a tcell screen
// Draw intents are queued during the drain and rasterized by Present around a camera position
type TerminalHost struct {
	screen  tcell.Screen
	buf     *RenderBuffer
	sounds  SoundPlayer
	intents []engine.Intent
}

// NewTerminalHost creates a host drawing to screen; sounds may be nil
func NewTerminalHost(screen tcell.Screen, sounds SoundPlayer) *TerminalHost {
	w, h := screen.Size()
	return &TerminalHost{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		sounds: sounds,
	}
}

func (h *TerminalHost) DrawTile(origin vmath.Vec3, texture component.Texture, frame component.Frame, color core.RGBA) {
	h.intents = append(h.intents, engine.Intent{Kind: engine.IntentTile, Origin: origin, Texture: texture, Frame: frame, Color: color})
}

func (h *TerminalHost) DrawSprite(origin vmath.Vec3, texture component.Texture, frame component.Frame, color core.RGBA, size vmath.Vec2) {
	h.intents = append(h.intents, engine.Intent{Kind: engine.IntentSprite, Origin: origin, Texture: texture, Frame: frame, Color: color, Size: size})
}

func (h *TerminalHost) DrawFlash(color core.RGBA) {
	h.intents = append(h.intents, engine.Intent{Kind: engine.IntentFlash, Color: color})
}

func (h *TerminalHost) DrawText(origin vmath.Vec3, text string, color core.RGBA) {
	h.intents = append(h.intents, engine.Intent{Kind: engine.IntentText, Origin: origin, Text: text, Color: color})
}

// PlaySound forwards immediately; sounds are not tied to frame presentation
func (h *TerminalHost) PlaySound(cue core.SoundCue) {
	if h.sounds != nil {
		h.sounds.Play(cue)
	}
}

// Pending returns the number of queued draw intents
func (h *TerminalHost) Pending() int {
	return len(h.intents)
}

// Buffer exposes the composited frame of the last Present
func (h *TerminalHost) Buffer() *RenderBuffer {
	return h.buf
}

// Present rasterizes queued intents centered on camera, writes the status line on the bottom row and shows the screen
// Intents are consumed in order, so later draws cover earlier ones
func (h *TerminalHost) Present(camera vmath.Vec3, statusLine string) {
	w, ht := h.screen.Size()
	if bw, bh := h.buf.Bounds(); bw != w || bh != ht {
		h.buf.Resize(w, ht)
	} else {
		h.buf.Clear()
	}

	view := viewport{width: w, height: ht - 1}
	view.camX, view.camY = floorCell(camera)

	for i := range h.intents {
		in := &h.intents[i]
		switch in.Kind {
		case engine.IntentTile:
			h.drawTile(view, in)
		case engine.IntentSprite:
			h.drawSprite(view, in)
		case engine.IntentText:
			h.drawText(view, in)
		case engine.IntentFlash:
			h.buf.Overlay(FromRGBA(in.Color), in.Color.A)
		}
	}
	h.intents = h.intents[:0]

	h.drawStatus(statusLine, ht-1)
	h.buf.FlushToScreen(h.screen)
	h.screen.Show()
}

// viewport maps world cells to screen columns and rows around the camera cell
type viewport struct {
	width, height int
	camX, camY    int
}

// project returns the left column and row of a world position
func (v viewport) project(pos vmath.Vec3) (int, int) {
	cx, cy := floorCell(pos)
	col := (v.width/CellColumns/2 + (cx - v.camX)) * CellColumns
	row := v.height/2 + (cy - v.camY)
	return col, row
}

// floorCell rounds toward negative infinity so positions straddling zero stay one cell apart
func floorCell(pos vmath.Vec3) (int, int) {
	return int(math.Floor(pos.X)), int(math.Floor(pos.Y))
}

func (v viewport) visible(row int) bool {
	return row >= 0 && row < v.height
}

func (h *TerminalHost) drawTile(v viewport, in *engine.Intent) {
	col, row := v.project(in.Origin)
	if !v.visible(row) {
		return
	}
	bg := RgbGrass.Modulate(in.Color)
	for i := 0; i < CellColumns; i++ {
		h.buf.SetBgOnly(col+i, row, bg)
	}
}

func (h *TerminalHost) drawSprite(v viewport, in *engine.Intent) {
	col, row := v.project(in.Origin)
	if !v.visible(row) {
		return
	}
	g := GlyphFor(in.Texture, in.Frame)
	fg := FromRGBA(in.Color)
	h.buf.SetFgOnly(col, row, g.Main, fg)
	h.buf.SetFgOnly(col+1, row, g.Side, fg)
}

// drawText centers the label over the sprite, one row per whole cell of height above it
func (h *TerminalHost) drawText(v viewport, in *engine.Intent) {
	col, row := v.project(in.Origin)
	row -= int(math.Ceil(in.Origin.Z))
	if !v.visible(row) {
		return
	}
	fg := FromRGBA(in.Color)
	start := col + CellColumns/2 - utf8.RuneCountInString(in.Text)/2
	i := 0
	for _, r := range in.Text {
		h.buf.SetFgOnly(start+i, row, r, fg)
		i++
	}
}

func (h *TerminalHost) drawStatus(line string, row int) {
	w, _ := h.buf.Bounds()
	for x := 0; x < w; x++ {
		h.buf.SetWithBg(x, row, ' ', RgbStatusFg, RgbStatusBg)
	}
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		h.buf.SetWithBg(x, row, r, RgbStatusFg, RgbStatusBg)
		x++
	}
}
