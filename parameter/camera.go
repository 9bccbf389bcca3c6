package parameter

// Lighting and view
const (
	// DrawRadius is the half-width in cells of the square drawn around the player
	DrawRadius = 8

	// ViewRadius is the distance at which light reaches zero
	ViewRadius = 8.0

	// LightFalloff is k in the inverse-square term 1 / (1 + k*(d/r)^2)
	LightFalloff = 16.0

	// LightEdgeSoftness is the fraction of the view radius over which light fades to zero
	LightEdgeSoftness = 0.2

	// FadeInDuration is the black overlay fade after a restart, in seconds
	FadeInDuration = 1.0

	// LabelOffset lifts floating text above the sprite top, in cells
	LabelOffset = 0.25
)
