package system

import (
	"time"

	coresys "github.com/skyshot/arena/internal/core/system"
	"github.com/skyshot/arena/internal/world"
)

// EnemyAISystem ticks the brain of every active enemy. Phase 2 (Update).
type EnemyAISystem struct {
	state *world.State
}

func NewEnemyAISystem(ws *world.State) *EnemyAISystem {
	return &EnemyAISystem{state: ws}
}

func (s *EnemyAISystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *EnemyAISystem) Update(dt time.Duration) {
	now := s.state.Now()
	for _, e := range s.state.ActiveEnemies() {
		// an earlier brain this tick may have parked it
		if e.Brain == nil || !e.Active() {
			continue
		}
		e.Brain.Tick(dt, now)
	}
}

// NavigationSystem moves grounded enemies toward their destinations.
// Phase 3 (PostUpdate).
type NavigationSystem struct {
	state *world.State
}

func NewNavigationSystem(ws *world.State) *NavigationSystem {
	return &NavigationSystem{state: ws}
}

func (s *NavigationSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *NavigationSystem) Update(dt time.Duration) {
	for _, e := range s.state.ActiveEnemies() {
		if a, ok := e.Nav.(*world.Agent); ok {
			a.Step(dt)
		}
	}
}
