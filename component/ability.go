package component

// AbilityComponent is the cooldown state of an entity's single ability
// Idle when Timer == 0, cooling down while Timer > 0
// The effect lands when the countdown crosses ActivatesAt
type AbilityComponent struct {
	Timer       float64 // Remaining cooldown in seconds, within [0, Total]
	Total       float64 // Full cooldown in seconds
	ActivatesAt float64 // Remaining-time threshold at which the effect lands
}

// Activate starts the cooldown from Idle; no-op while cooling down
func (a *AbilityComponent) Activate() {
	if a.Timer <= 0 {
		a.Timer = a.Total
	}
}

// Reset cancels the cooldown and any pending activation
func (a *AbilityComponent) Reset() {
	a.Timer = 0
}

// InProgress reports an active cooldown
func (a AbilityComponent) InProgress() bool {
	return a.Timer > 0
}

// Progress returns 0..1 completion of the cooldown, 0 when Total is unset
func (a AbilityComponent) Progress() float64 {
	if a.Total <= 0 {
		return 0
	}
	return 1 - a.Timer/a.Total
}

// Advance counts the timer down by dt and clamps at zero
// Returns true exactly when this step crossed ActivatesAt from above
func (a *AbilityComponent) Advance(dt float64) bool {
	if a.Timer <= 0 {
		return false
	}
	before := a.Timer
	a.Timer -= dt
	crossed := before > a.ActivatesAt && a.Timer <= a.ActivatesAt
	if a.Timer < 0 {
		a.Timer = 0
	}
	return crossed
}
