package parameter

const (
	// HitDamage is applied by every landed ability hit
	HitDamage = 30.0

	// BladeLength is the reach of the melee sweep segment from the attacker's position
	BladeLength = 1.0

	// PlayerContactRadius is added to a bot's radius to decide when it attacks
	PlayerContactRadius = 0.4

	// CollisionSearchRadius is the broad-phase square half-width in cells
	CollisionSearchRadius = 2
)

// Hit flash
const (
	FlashDuration       = 0.3 // Seconds for a damaged tint to return to white
	DamageFlashDuration = 0.5 // Seconds of full-screen flash when the player is hit
	DamageFlashAlpha    = 0.4
)
