package render

import (
	"github.com/lixenwraith/tile-survivor/component"
)

// Glyph is the two-column terminal rendering of a sprite frame
type Glyph struct {
	Main, Side rune
}

// GlyphFor maps a texture and animation frame to terminal runes
func GlyphFor(texture component.Texture, frame component.Frame) Glyph {
	if frame == component.FrameDead {
		return Glyph{'x', ' '}
	}

	var main rune
	switch texture {
	case component.TexturePlayer:
		main = '@'
	case component.TextureZombie:
		main = 'Z'
	case component.TextureTree:
		return Glyph{'♣', '♣'}
	default:
		main = '?'
	}

	switch frame {
	case component.FrameWalk1:
		return Glyph{main, '.'}
	case component.FrameWalk2:
		return Glyph{main, ','}
	case component.FrameReadyAttack:
		return Glyph{main, '|'}
	case component.FrameAttack:
		return Glyph{main, '/'}
	default:
		return Glyph{main, ' '}
	}
}
