package system

import (
	"github.com/lixenwraith/tile-survivor/event"
)

// tickDT extracts the step from a Tick or PostTick payload
func tickDT(ev event.GameEvent) (float64, bool) {
	p, ok := ev.Payload.(event.TickPayload)
	if !ok {
		return 0, false
	}
	return p.DT, true
}
