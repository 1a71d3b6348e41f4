package behavior

import (
	"time"

	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/world"
)

// Launch acquires a projectile at from, aims it at target and overrides the
// stamped stats with the shooter's. The lifetime countdown restarts.
func Launch(reg *pool.Registry, proto pool.Prototype, from, target geom.Vec3,
	speed, damage float64, lifetime time.Duration) *world.Projectile {
	rot := geom.LookRotation(target.Sub(from))
	p := reg.Acquire(proto, from, rot).(*world.Projectile)
	p.Speed = speed
	p.Damage = damage
	p.Lifetime = lifetime
	p.Remaining = lifetime
	p.Velocity = p.Forward().Scale(speed)
	return p
}

// StepProjectile moves p by one tick and counts its lifetime down. An expired
// projectile is released and true is returned. With inclusive expiry a
// projectile is removed on the tick its remaining time reaches zero;
// otherwise it survives that tick and goes on the next.
func StepProjectile(p *world.Projectile, dt time.Duration, inclusive bool) bool {
	if !p.Active() {
		return false
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt.Seconds()))
	p.Remaining -= dt
	if p.Remaining < 0 || (inclusive && p.Remaining == 0) {
		p.ReleaseSelf()
		return true
	}
	return false
}

// OnContact resolves one contact. A damageable target takes the projectile's
// damage and the projectile is consumed; terrain consumes it without damage.
// It returns true when the projectile was consumed.
func OnContact(p *world.Projectile, c world.Contact) bool {
	if !p.Active() {
		return false
	}
	switch c.Kind {
	case world.ContactDamageable:
		result := combat.Deal(p.Damage, c.Target)
		if p.OnHit != nil {
			p.OnHit(result)
		}
		p.ReleaseSelf()
		return true
	case world.ContactTerrain:
		p.ReleaseSelf()
		return true
	}
	return false
}
