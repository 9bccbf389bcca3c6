package event

import (
	"github.com/lixenwraith/tile-survivor/component"
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// TickPayload carries the elapsed step in seconds
type TickPayload struct {
	DT float64
}

// CollisionPayload names the mover and the solid neighbor it was pushed out of
type CollisionPayload struct {
	Entity core.Entity
	Other  core.Entity
}

// SpawnPayload requests a new entity of Variant at Pos
type SpawnPayload struct {
	Pos     vmath.Vec3
	Variant component.Variant
}

// EntityPayload carries a single entity handle
type EntityPayload struct {
	Entity core.Entity
}

// PlayerInputPayload is one frame of player intent
type PlayerInputPayload struct {
	Player     core.Entity
	MoveDir    vmath.Vec3 // Each axis in [-1,1]
	Facing     float64    // Radians
	UseAbility bool
}

// AbilityHitPayload names the attacker and the target its swing connected with
type AbilityHitPayload struct {
	Attacker core.Entity
	Target   core.Entity
}

// ApplyDamagePayload subtracts Amount from Target, Source is informational
type ApplyDamagePayload struct {
	Target core.Entity
	Source core.Entity
	Amount float64
}
