package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/status"
)

// Context is passed to every handler: world access plus the capabilities a system may use
type Context struct {
	World  *World
	Rand   Rand
	Host   Host
	Log    *logrus.Entry
	Status *status.Registry
}

// NewContext bundles a world with its capabilities
// Nil capabilities fall back to a seeded FastRand, NopHost, a discarding logger and a fresh registry
func NewContext(world *World, rnd Rand, host Host, log *logrus.Entry, stats *status.Registry) *Context {
	if rnd == nil {
		rnd = NewFastRand(1)
	}
	if host == nil {
		host = NopHost{}
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}
	if stats == nil {
		stats = status.NewRegistry()
	}
	return &Context{
		World:  world,
		Rand:   rnd,
		Host:   host,
		Log:    log,
		Status: stats,
	}
}

// PushEvent appends an event to the world queue
func (c *Context) PushEvent(t event.EventType, payload any) {
	c.World.PushEvent(t, payload)
}

// RandN returns a value in [0, n), 0 when n is 0
func (c *Context) RandN(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return c.Rand.Uint32() % n
}

// RandFloat returns a value in [0, 1)
func (c *Context) RandFloat() float64 {
	return float64(c.Rand.Uint32()) / (math.MaxUint32 + 1.0)
}

// RandRange returns a value in [lo, hi)
func (c *Context) RandRange(lo, hi float64) float64 {
	return lo + (hi-lo)*c.RandFloat()
}
