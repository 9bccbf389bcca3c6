package component

import (
	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// Body is the complete simulated state of one entity
// A single record per entity; systems mutate it in place through the store
type Body struct {
	Pos     vmath.Vec3 // Z is a visual offset, gameplay is planar
	Variant Variant
	Texture Texture
	Frame   Frame

	MoveDir  vmath.Vec3 // Unit vector or zero
	Facing   float64    // Radians
	MaxSpeed float64    // Cells per second

	Solid      bool
	Radius     float64    // Interaction radius for collision and hit tests
	SpriteSize vmath.Vec2 // Width, height in cells

	Ability AbilityComponent

	// Walk cycle: BobPhase = sin(DistanceTotal), DistanceTotal accrues |moved| * BobSpeed
	BobPhase      float64
	BobSpeed      float64
	DistanceTotal float64

	Label string // Floating text, empty for none

	Health HealthComponent
	Tint   core.RGBA
	Flash  TimerComponent
}

// ActivateAbility starts the ability cooldown from Idle; no-op while cooling down
func (b *Body) ActivateAbility() {
	b.Ability.Activate()
}

// ResetAbility forces the ability back to Idle, canceling a pending activation
func (b *Body) ResetAbility() {
	b.Ability.Reset()
}

// AbilityInProgress reports an active cooldown
func (b *Body) AbilityInProgress() bool {
	return b.Ability.InProgress()
}

// Dead reports a damageable body whose health is exhausted
// Indestructible scenery has zero health but is never dead
func (b *Body) Dead() bool {
	return b.Health.CanReceiveDamage && !b.Health.IsAlive()
}

// Kill moves the body into the terminal corpse state
func (b *Body) Kill() {
	b.Health.Current = 0
	b.Solid = false
	b.MaxSpeed = 0
	b.MoveDir = vmath.Vec3{}
	b.Variant = VariantUnknown
	b.Frame = FrameDead
	b.Ability.Reset()
}

// AbilityProgress returns 0..1 completion of the ability cooldown
func (b *Body) AbilityProgress() float64 {
	return b.Ability.Progress()
}
