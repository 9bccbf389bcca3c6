package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the simulation
const (
	KeyEntitySpawned   = "entity.spawned"
	KeyEntityDespawned = "entity.despawned"
	KeyEntityLive      = "entity.live"
	KeyCollisionCount  = "collision.count"
	KeyAbilityHits     = "ability.hits"
	KeyEventDispatched = "event.dispatched"
	KeyTilesRevealed   = "tile.revealed"
	KeyPlayerAlive     = "player.alive"
	KeyPlayerHealth    = "player.health"
	KeyPlayerFrame     = "player.frame"
)

// Registry is the central metrics facade
// Systems cache pointers on construction; handlers write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Int returns the current value of an integer metric, 0 when unregistered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary formats every metric as sorted key=value pairs for a status line
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.0f", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
