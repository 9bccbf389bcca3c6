package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue shapes
const (
	SwingDuration  = 180 * time.Millisecond
	SwingFreqStart = 900.0 // Hz, sweep falls to SwingFreqEnd
	SwingFreqEnd   = 220.0

	HitDuration = 150 * time.Millisecond
	HitFreq     = 120.0

	DeathDuration = 400 * time.Millisecond
	DeathRumble   = 80.0
)
