package world

import (
	"time"

	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
)

// Faction decides what a projectile may damage.
type Faction int

const (
	Hostile  Faction = iota // fired by enemies, damages the player
	Friendly                // fired by the player, damages enemies
)

// ProjectileSpec is the stat block stamped onto a projectile when its
// prototype instantiates it. Reused instances keep the stamp, which is why
// weapon upgrades purge the pool.
type ProjectileSpec struct {
	Damage   float64
	Speed    float64
	Scale    geom.Vec3
	Lifetime time.Duration
	Radius   float64
	Faction  Faction
}

// Projectile is pooled damage in flight.
type Projectile struct {
	pool.Tag
	ProjectileSpec

	Velocity  geom.Vec3
	Remaining time.Duration
	// OnHit receives the TakeDamage result of a damaging contact.
	OnHit func(result float64)

	registry *pool.Registry
}

// OnActivate restarts the lifetime countdown and launches along the spawn
// orientation at the stamped speed.
func (p *Projectile) OnActivate() {
	p.Remaining = p.Lifetime
	p.Velocity = p.Forward().Scale(p.Speed)
}

func (p *Projectile) OnDeactivate() {
	p.Velocity = geom.Zero
	p.OnHit = nil
}

func (p *Projectile) ReleaseSelf() bool {
	return p.registry.Release(p)
}

// ProjectilePrototype stamps Spec() onto each instance it builds.
type ProjectilePrototype struct {
	Name     string
	Spec     func() ProjectileSpec
	State    *State
	Registry *pool.Registry
}

func (p *ProjectilePrototype) Key() string { return p.Name }

func (p *ProjectilePrototype) Instantiate(id ecs.EntityID) pool.Poolable {
	pr := &Projectile{ProjectileSpec: p.Spec(), registry: p.Registry}
	p.State.Projectiles.Set(id, pr)
	return pr
}
