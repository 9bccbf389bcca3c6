package core

// SoundCue identifies a sound effect requested by the simulation
type SoundCue int

const (
	SoundSwing SoundCue = iota // Ability activation
	SoundHit                   // Player struck
	SoundDeath                 // Entity killed
	SoundCueCount
)

var soundCueNames = [SoundCueCount]string{"swing", "hit", "death"}

func (s SoundCue) String() string {
	if s < 0 || s >= SoundCueCount {
		return "unknown"
	}
	return soundCueNames[s]
}
