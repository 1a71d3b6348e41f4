package system

import (
	"time"

	"github.com/skyshot/arena/internal/core/event"
	coresys "github.com/skyshot/arena/internal/core/system"
	"github.com/skyshot/arena/internal/world"
)

// ClockSystem advances simulated time. Phase 0 (Input).
type ClockSystem struct {
	state *world.State
}

func NewClockSystem(ws *world.State) *ClockSystem {
	return &ClockSystem{state: ws}
}

func (s *ClockSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *ClockSystem) Update(dt time.Duration) {
	s.state.Advance(dt)
}

// EventDispatchSystem delivers the events emitted during the previous tick.
// Phase 1 (PreUpdate).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
