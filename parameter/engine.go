package parameter

// Simulation loop
const (
	TickRateHz = 60

	// MapGenHalfWidth is the revealed square half-width around the player, in cells
	MapGenHalfWidth = 16

	// MapGenChoices is the die size for map generation; 0 spawns a tree, 1 a zombie
	MapGenChoices = 6

	// MaxEventsPerDrain bounds a single drain before it is treated as an event cycle
	MaxEventsPerDrain = 1 << 20

	DefaultSeed = 1
)

// Walk bob
const (
	// BobDecay halves the bob phase each idle tick
	BobDecay = 0.5
	// BobSnap zeroes the bob once its magnitude falls below this
	BobSnap = 0.01
)
