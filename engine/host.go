package engine

import (
	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// Host receives presentation intents from the simulation
// Implementations queue or apply them; the simulation never reads back
type Host interface {
	DrawTile(origin vmath.Vec3, texture component.Texture, frame component.Frame, color core.RGBA)
	DrawSprite(origin vmath.Vec3, texture component.Texture, frame component.Frame, color core.RGBA, size vmath.Vec2)
	// DrawFlash tints the whole view, color alpha is the intensity
	DrawFlash(color core.RGBA)
	DrawText(origin vmath.Vec3, text string, color core.RGBA)
	PlaySound(cue core.SoundCue)
}

// NopHost discards every intent
type NopHost struct{}

func (NopHost) DrawTile(vmath.Vec3, component.Texture, component.Frame, core.RGBA) {}
func (NopHost) DrawSprite(vmath.Vec3, component.Texture, component.Frame, core.RGBA, vmath.Vec2) {}
func (NopHost) DrawFlash(core.RGBA) {}
func (NopHost) DrawText(vmath.Vec3, string, core.RGBA) {}
func (NopHost) PlaySound(core.SoundCue) {}

// IntentKind tags a recorded host call
type IntentKind int

const (
	IntentTile IntentKind = iota
	IntentSprite
	IntentFlash
	IntentText
	IntentSound
)

// Intent is one recorded host call; unused fields stay zero
type Intent struct {
	Kind    IntentKind
	Origin  vmath.Vec3
	Texture component.Texture
	Frame   component.Frame
	Color   core.RGBA
	Size    vmath.Vec2
	Text    string
	Sound   core.SoundCue
}

// RecordingHost keeps every intent in call order
type RecordingHost struct {
	Intents []Intent
}

func (h *RecordingHost) DrawTile(origin vmath.Vec3, texture component.Texture, frame component.Frame, color core.RGBA) {
	h.Intents = append(h.Intents, Intent{Kind: IntentTile, Origin: origin, Texture: texture, Frame: frame, Color: color})
}

func (h *RecordingHost) DrawSprite(origin vmath.Vec3, texture component.Texture, frame component.Frame, color core.RGBA, size vmath.Vec2) {
	h.Intents = append(h.Intents, Intent{Kind: IntentSprite, Origin: origin, Texture: texture, Frame: frame, Color: color, Size: size})
}

func (h *RecordingHost) DrawFlash(color core.RGBA) {
	h.Intents = append(h.Intents, Intent{Kind: IntentFlash, Color: color})
}

func (h *RecordingHost) DrawText(origin vmath.Vec3, text string, color core.RGBA) {
	h.Intents = append(h.Intents, Intent{Kind: IntentText, Origin: origin, Text: text, Color: color})
}

func (h *RecordingHost) PlaySound(cue core.SoundCue) {
	h.Intents = append(h.Intents, Intent{Kind: IntentSound, Sound: cue})
}

// Count returns the number of recorded intents of kind k
func (h *RecordingHost) Count(k IntentKind) int {
	n := 0
	for _, in := range h.Intents {
		if in.Kind == k {
			n++
		}
	}
	return n
}

// Sounds returns the recorded sound cues in order
func (h *RecordingHost) Sounds() []core.SoundCue {
	var cues []core.SoundCue
	for _, in := range h.Intents {
		if in.Kind == IntentSound {
			cues = append(cues, in.Sound)
		}
	}
	return cues
}

// Reset drops all recorded intents
func (h *RecordingHost) Reset() {
	h.Intents = h.Intents[:0]
}
