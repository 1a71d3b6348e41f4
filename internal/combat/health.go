package combat

import "math"

// Releaser parks a dead entity. *pool.Registry satisfies it through a small
// adapter held by the entity.
type Releaser interface {
	ReleaseSelf() bool
}

// Health is the per-activation-cycle health state of an entity. Death
// resolves at most once per cycle; ResetOnActivate opens a new cycle.
type Health struct {
	Max           float64
	Current       float64
	ContactDamage int

	// Optional collaborators. A nil value is treated as absent.
	Mitigate Mitigation
	Drops    DropTable
	Target   Damageable
	Release  Releaser
	OnKilled func()

	dead bool
}

func NewHealth(max float64, contactDamage int) Health {
	return Health{Max: max, Current: max, ContactDamage: contactDamage}
}

// ResetOnActivate restores full health and clears the dead flag. Entities
// call it every time the pool activates them.
func (h *Health) ResetOnActivate() {
	h.Current = h.Max
	h.dead = false
}

func (h *Health) Dead() bool { return h.dead }

// TakeDamage applies amount after mitigation. The call that takes health to
// zero or below runs the death sequence and returns Killed; every later call
// in the same cycle is a no-op returning 0. Otherwise the non-negative
// remaining health is returned.
func (h *Health) TakeDamage(amount float64) float64 {
	if h.dead {
		return 0
	}
	if h.Mitigate != nil {
		amount = h.Mitigate(amount)
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.kill()
		return Killed
	}
	return math.Max(h.Current, 0)
}

// kill order: dead flag, drops, release to pool, then notify.
func (h *Health) kill() {
	h.dead = true
	if h.Drops != nil {
		h.Drops.DropCommons()
	}
	if h.Release != nil {
		h.Release.ReleaseSelf()
	}
	if h.OnKilled != nil {
		h.OnKilled()
	}
}

// DealDamageToTarget sends ContactDamage through the pipeline to the bound
// target and returns the raw amount sent, or 0 when no target is bound.
func (h *Health) DealDamageToTarget() int {
	if h.Target == nil {
		return 0
	}
	Deal(float64(h.ContactDamage), h.Target)
	return h.ContactDamage
}

// Percentage returns current/max clamped to [0,1].
func (h *Health) Percentage() float64 {
	if h.Max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, h.Current/h.Max))
}
