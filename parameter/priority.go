package parameter

// System Execution Priorities (lower runs first)
// Only systems sharing an event type are ordered against each other
const (
	// Tick pipeline
	PriorityMapGen   = 10 // Reveal tiles before occupancy rebuild
	PriorityTileMap  = 20
	PriorityBot      = 30 // Steering before movement consumes move_dir
	PriorityMovement = 40
	PriorityAbility  = 50 // Cooldown after movement
	PriorityFlash    = 60

	// Single-handler events
	PriorityRestart          = 100
	PrioritySpawn            = 100
	PriorityInput            = 100
	PriorityCollision        = 100
	PriorityAbilityActivated = 100
	PriorityAbilityHit       = 100
	PriorityDamage           = 100
	PriorityDespawn          = 100

	PriorityRender = 900 // PostTick, after all game logic
)
