package parameter

// Shared entity defaults, applied before variant overrides
const (
	DefaultRadius         = 0.4
	DefaultSpriteWidth    = 1.0
	DefaultSpriteHeight   = 1.0
	DefaultAbilityTotal   = 1.0 // Seconds
	DefaultAbilityTrigger = 0.5 // Seconds remaining when the ability fires
	DefaultBobSpeed       = 1.0
)

// Player
const (
	PlayerHealth         = 100.0
	PlayerMaxSpeed       = 2.5
	PlayerBobSpeed       = 2.5
	PlayerAbilityTotal   = 0.5
	PlayerAbilityTrigger = 0.2
)

// Tree footprint is drawn uniformly from [Min, Max)
const (
	TreeRadius          = 0.1
	TreeSpriteWidthMin  = 1.0
	TreeSpriteWidthMax  = 1.3
	TreeSpriteHeightMin = 1.5
	TreeSpriteHeightMax = 2.5
	TreeLabel           = "Tree"
)

// Zombie
const (
	ZombieHealth       = 30.0
	ZombieMaxSpeed     = 0.5
	ZombieBobSpeed     = 20.0
	ZombieSpriteWidth  = 0.5
	ZombieSpriteHeight = 1.0
	ZombieLabel        = "Zombie"
)
