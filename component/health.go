package component

// HealthComponent tracks hit points
// Current stays within [0, Max]; entities with CanReceiveDamage=false ignore damage
type HealthComponent struct {
	Current          float64
	Max              float64
	CanReceiveDamage bool
}

// NewHealth returns full health with the given maximum
func NewHealth(max float64) HealthComponent {
	return HealthComponent{
		Current:          max,
		Max:              max,
		CanReceiveDamage: true,
	}
}

// Indestructible returns scenery health: zero max, never damaged
func Indestructible() HealthComponent {
	return HealthComponent{}
}

// ApplyDamage subtracts amount and clamps at zero, no-op when damage is disabled
// Returns true if damage was applied
func (h *HealthComponent) ApplyDamage(amount float64) bool {
	if !h.CanReceiveDamage {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return true
}

// IsAlive reports positive health
func (h HealthComponent) IsAlive() bool {
	return h.Current > 0
}
