package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-survivor/core"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{0, 0, 0}
	RgbGrass      = RGB{46, 92, 40}
	RgbStatusFg   = RGB{192, 202, 245}
	RgbStatusBg   = RGB{26, 27, 38}
)

// FromRGBA converts a normalized simulation color, ignoring alpha
func FromRGBA(c core.RGBA) RGB {
	r, g, b := c.RGB8()
	return RGB{r, g, b}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Modulate multiplies each channel by the matching normalized channel of c
func (dst RGB) Modulate(c core.RGBA) RGB {
	return RGB{
		R: uint8(float64(dst.R) * clampUnit(c.R)),
		G: uint8(float64(dst.G) * clampUnit(c.G)),
		B: uint8(float64(dst.B) * clampUnit(c.B)),
	}
}

// TCell returns the truecolor tcell value
func (dst RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(dst.R), int32(dst.G), int32(dst.B))
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
