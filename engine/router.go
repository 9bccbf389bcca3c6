package engine

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/status"
)

// DefaultMaxEventsPerDrain bounds a single drain before it is treated as an event cycle
const DefaultMaxEventsPerDrain = 1 << 20

// ErrRunawayDrain is the panic cause when a drain exceeds its event limit
var ErrRunawayDrain = errors.New("runaway event drain")

// System handles routed events
// Handlers for the same event type run in ascending Priority, ties in registration order
type System interface {
	Name() string
	Priority() int
	EventTypes() []event.EventType
	HandleEvent(ctx *Context, ev event.GameEvent)
}

// Router dispatches queued events to registered systems
//
// Architecture:
//   - Single-threaded dispatch, handlers mutate the world directly
//   - Multiple systems can register for the same event type
//   - Drain runs until the queue is empty, including events pushed by handlers
type Router struct {
	handlers  map[event.EventType][]System
	maxEvents int
	traced    map[event.EventType]bool
}

// NewRouter creates a router; maxEvents <= 0 selects DefaultMaxEventsPerDrain
func NewRouter(maxEvents int) *Router {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEventsPerDrain
	}
	return &Router{
		handlers:  make(map[event.EventType][]System),
		maxEvents: maxEvents,
		traced:    make(map[event.EventType]bool),
	}
}

// Register adds a system for each of its declared event types
func (r *Router) Register(sys System) {
	for _, t := range sys.EventTypes() {
		list := append(r.handlers[t], sys)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() < list[j].Priority()
		})
		r.handlers[t] = list
	}
}

// Trace enables per-event trace logging for the given types
func (r *Router) Trace(types ...event.EventType) {
	for _, t := range types {
		r.traced[t] = true
	}
}

// Pipeline returns the names of the systems handling t in dispatch order
func (r *Router) Pipeline(t event.EventType) []string {
	names := make([]string, 0, len(r.handlers[t]))
	for _, sys := range r.handlers[t] {
		names = append(names, sys.Name())
	}
	return names
}

// HasHandlers returns true if any systems are registered for the given type
func (r *Router) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of systems registered for the given type
func (r *Router) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}

// Drain pops and dispatches events until the queue is empty and returns the count processed
// Events pushed by handlers are processed in the same drain after everything queued before them
// Panics with ErrRunawayDrain once more than the configured limit is processed
func (r *Router) Drain(ctx *Context) int {
	queue := ctx.World.Events()
	dispatched := ctx.Status.Ints.Get(status.KeyEventDispatched)
	traceOn := ctx.Log.Logger.IsLevelEnabled(logrus.TraceLevel)

	n := 0
	for {
		ev, ok := queue.Pop()
		if !ok {
			break
		}
		n++
		if n > r.maxEvents {
			panic(errors.Wrapf(ErrRunawayDrain, "limit %d exceeded at %s", r.maxEvents, ev.Type))
		}

		if traceOn && r.traced[ev.Type] {
			ctx.Log.WithFields(logrus.Fields{
				"event": ev.Type.String(),
				"frame": ev.Frame,
			}).Trace("dispatch")
		}

		for _, sys := range r.handlers[ev.Type] {
			sys.HandleEvent(ctx, ev)
		}
	}

	dispatched.Add(int64(n))
	return n
}
