package system

import (
	"time"

	"github.com/skyshot/arena/internal/core/ecs"
	coresys "github.com/skyshot/arena/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end,
// dropping purged pool instances from every component store.
// Phase 5 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
}

func NewCleanupSystem(world *ecs.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.FlushDestroyQueue()
}
