package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: advance clock
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseUpdate                  // 2: spawning, enemy behaviors, player weapon
	PhasePostUpdate              // 3: navigation, projectile travel + contacts
	PhasePersist                 // 4: kill ledger flush
	PhaseCleanup                 // 5: destroy purged entities
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
