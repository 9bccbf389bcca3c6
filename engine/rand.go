package engine

// Rand is the source of all simulation randomness
// Systems draw through the Context helpers so a fixed source reproduces a run
type Rand interface {
	Uint32() uint32
}

// FastRand is a xorshift64 generator
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; zero seed is replaced since xorshift cannot leave state 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next advances the state and returns 64 random bits
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint32 returns the high 32 bits of the next state
func (r *FastRand) Uint32() uint32 {
	return uint32(r.Next() >> 32)
}

// SequenceRand replays a fixed sequence of values, cycling when exhausted
// An empty sequence always yields 0
type SequenceRand struct {
	Values []uint32
	pos    int
}

// NewSequenceRand creates a replaying source
func NewSequenceRand(values ...uint32) *SequenceRand {
	return &SequenceRand{Values: values}
}

func (r *SequenceRand) Uint32() uint32 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	return v
}

// Drawn returns the number of values consumed
func (r *SequenceRand) Drawn() int {
	return r.pos
}
