package component

// TimerComponent is a one-shot countdown used for visual effects
// The zero value is finished
type TimerComponent struct {
	Duration float64
	Elapsed  float64
	Running  bool
}

// NewTimer returns a timer of duration seconds, optionally already running
func NewTimer(duration float64, running bool) TimerComponent {
	return TimerComponent{Duration: duration, Running: running}
}

// Tick advances the timer and stops it at Duration
func (t *TimerComponent) Tick(dt float64) {
	if !t.Running {
		return
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.Running = false
	}
}

// Restart rewinds to zero and starts running
func (t *TimerComponent) Restart() {
	t.Elapsed = 0
	t.Running = true
}

// Finished reports a stopped timer
func (t TimerComponent) Finished() bool {
	return !t.Running
}

// Progress returns 0..1 elapsed fraction, 1 when Duration is unset
func (t TimerComponent) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := t.Elapsed / t.Duration
	if p > 1 {
		return 1
	}
	return p
}
