package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as IEEE bits
// Zero value reads 0.0; method names match atomic.Int64 and atomic.Bool
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Swap stores val and returns the previous value
func (f *AtomicFloat) Swap(val float64) float64 {
	return math.Float64frombits(f.bits.Swap(math.Float64bits(val)))
}
