package system

import (
	"time"

	"github.com/skyshot/arena/internal/behavior"
	coresys "github.com/skyshot/arena/internal/core/system"
	"github.com/skyshot/arena/internal/world"
)

// ProjectileSystem flies every active projectile, expires the old ones and
// resolves contacts. Phase 3 (PostUpdate), after navigation.
type ProjectileSystem struct {
	state     *world.State
	inclusive bool

	expired  int
	consumed int
}

func NewProjectileSystem(ws *world.State, expireInclusive bool) *ProjectileSystem {
	return &ProjectileSystem{state: ws, inclusive: expireInclusive}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *ProjectileSystem) Update(dt time.Duration) {
	s.state.RebuildGrid()
	for _, p := range s.state.ActiveProjectiles() {
		if behavior.StepProjectile(p, dt, s.inclusive) {
			s.expired++
			continue
		}
		for _, c := range s.state.Contacts(p) {
			if behavior.OnContact(p, c) {
				s.consumed++
				break
			}
		}
	}
}

// Stats returns how many projectiles expired and how many were consumed by
// contacts.
func (s *ProjectileSystem) Stats() (expired, consumed int) {
	return s.expired, s.consumed
}
