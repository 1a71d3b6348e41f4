package world

import (
	"time"

	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/pool"
)

// Brain is an enemy's per-tick decision logic.
type Brain interface {
	Tick(dt, now time.Duration)
	// Reset starts a fresh activation cycle.
	Reset()
}

// Enemy is a pooled hostile entity. The embedded Health makes it a
// combat.Damageable; the embedded Tag ties it to its pool.
type Enemy struct {
	pool.Tag
	combat.Health

	Template *data.EnemyTemplate
	Nav      Navigator
	Brain    Brain
	Wave     int

	registry *pool.Registry
}

// OnActivate opens a new activation cycle: full health, alive, fresh brain.
func (e *Enemy) OnActivate() {
	e.ResetOnActivate()
	if a, ok := e.Nav.(*Agent); ok {
		a.Reset()
	}
	if e.Brain != nil {
		e.Brain.Reset()
	}
}

func (e *Enemy) OnDeactivate() {
	if e.Nav != nil {
		e.Nav.SetStopped(true)
	}
}

// ReleaseSelf returns the enemy to its pool; used by the death sequence.
func (e *Enemy) ReleaseSelf() bool {
	return e.registry.Release(e)
}

// EnemyPrototype instantiates enemies of one template. Setup wires behavior
// and collaborators onto a freshly constructed enemy.
type EnemyPrototype struct {
	Template *data.EnemyTemplate
	State    *State
	Registry *pool.Registry
	Setup    func(e *Enemy)
}

func (p *EnemyPrototype) Key() string { return p.Template.Key }

func (p *EnemyPrototype) Instantiate(id ecs.EntityID) pool.Poolable {
	e := &Enemy{Template: p.Template, registry: p.Registry}
	e.Health = combat.NewHealth(p.Template.MaxHealth, p.Template.Damage)
	e.Health.Release = e
	if p.Setup != nil {
		p.Setup(e)
	}
	p.State.Enemies.Set(id, e)
	return e
}
