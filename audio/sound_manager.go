package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/tile-survivor/core"
	"github.com/lixenwraith/tile-survivor/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays simulation sound cues through a single mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      [core.SoundCueCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; a failure leaves the manager silent but usable
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues the streamer for a cue; no-op when audio is not initialized
func (sm *SoundManager) Play(cue core.SoundCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := CueStreamer(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[cue]++
}

// Played returns how many times a cue reached the mixer
func (sm *SoundManager) Played(cue core.SoundCue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= core.SoundCueCount {
		return 0
	}
	return sm.played[cue]
}

// CueStreamer builds a finite streamer for a cue, nil for unknown cues
func CueStreamer(cue core.SoundCue) beep.Streamer {
	switch cue {
	case core.SoundSwing:
		return beep.Take(sampleRate.N(parameter.SwingDuration), NewSweepGenerator(sampleRate, parameter.SwingFreqStart, parameter.SwingFreqEnd, parameter.SwingDuration.Seconds()))
	case core.SoundHit:
		return beep.Take(sampleRate.N(parameter.HitDuration), NewBuzzGenerator(sampleRate, parameter.HitFreq))
	case core.SoundDeath:
		return beep.Take(sampleRate.N(parameter.DeathDuration), NewDecayGenerator(sampleRate, parameter.DeathRumble))
	default:
		return nil
	}
}

// SweepGenerator generates a falling tone for a blade swing
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	duration float64
	phase    float64
	pos      int
}

// NewSweepGenerator creates a sweep from one frequency to another over duration seconds
func NewSweepGenerator(sr beep.SampleRate, from, to, duration float64) *SweepGenerator {
	return &SweepGenerator{
		sr:       sr,
		from:     from,
		to:       to,
		duration: duration,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t/g.duration, 1)

		// Exponential sweep, integrate frequency into phase to avoid clicks
		freq := g.from * math.Pow(g.to/g.from, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Sin(progress * math.Pi)
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// DecayGenerator generates a crackling fall-off for deaths
type DecayGenerator struct {
	sr     beep.SampleRate
	rumble float64
	pos    int
	seed   int64
}

// NewDecayGenerator creates a decay sound generator with a fixed noise seed
func NewDecayGenerator(sr beep.SampleRate, rumble float64) *DecayGenerator {
	return &DecayGenerator{
		sr:     sr,
		rumble: rumble,
		seed:   0x5eed,
	}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*g.rumble*t)
		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}
