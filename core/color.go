package core

// RGBA stores normalized color channels in [0,1], decoupled from any renderer
// Alpha doubles as intensity for full-screen flashes
type RGBA struct {
	R, G, B, A float64
}

// Predefined colors
var (
	RGBAWhite = RGBA{1, 1, 1, 1}
	RGBABlack = RGBA{0, 0, 0, 1}
	RGBARed   = RGBA{1, 0, 0, 1}
)

// Blend performs alpha blending: result = src*alpha + c*(1-alpha)
func (c RGBA) Blend(src RGBA, alpha float64) RGBA {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGBA{
		R: src.R*alpha + c.R*inv,
		G: src.G*alpha + c.G*inv,
		B: src.B*alpha + c.B*inv,
		A: src.A*alpha + c.A*inv,
	}
}

// Scale multiplies the color channels by factor, alpha is kept
func (c RGBA) Scale(factor float64) RGBA {
	if factor <= 0 {
		return RGBA{A: c.A}
	}
	return RGBA{
		R: clamp01(c.R * factor),
		G: clamp01(c.G * factor),
		B: clamp01(c.B * factor),
		A: c.A,
	}
}

// WithAlpha returns the color with alpha replaced
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// RGB8 converts to 8-bit channels, ignoring alpha
func (c RGBA) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func clamp01(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
