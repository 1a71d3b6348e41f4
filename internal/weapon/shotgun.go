package weapon

import (
	"math/rand"
	"time"

	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/core/event"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/world"
	"go.uber.org/zap"
)

// Shotgun fires bursts of pooled pellets. It doubles as the player's air
// jump, so it only reloads after the player has touched the ground since the
// last shot.
type Shotgun struct {
	stats    Stats
	pellet   *world.ProjectilePrototype
	capacity int
	ammo     int
	grounded bool

	reg *pool.Registry
	bus *event.Bus
	rng *rand.Rand
	log *zap.Logger
}

// NewShotgun builds a loaded shotgun. Pellets are stamped from the current
// stats whenever the pool constructs one.
func NewShotgun(def data.ShotgunDef, hitRadius float64, state *world.State,
	reg *pool.Registry, bus *event.Bus, rng *rand.Rand, log *zap.Logger) *Shotgun {
	s := &Shotgun{
		stats:    NewStats(def),
		capacity: max(def.Capacity, 1),
		reg:      reg,
		bus:      bus,
		rng:      rng,
		log:      log,
	}
	s.ammo = s.capacity
	lifetime := time.Duration(def.Lifetime) * time.Millisecond
	s.pellet = &world.ProjectilePrototype{
		Name: def.Pellet,
		Spec: func() world.ProjectileSpec {
			return world.ProjectileSpec{
				Damage:   s.stats.Damage(),
				Speed:    s.stats.ProjectileSpeed(),
				Scale:    s.stats.Scale(),
				Lifetime: lifetime,
				Radius:   hitRadius,
				Faction:  world.Friendly,
			}
		},
		State:    state,
		Registry: reg,
	}
	return s
}

func (s *Shotgun) Stats() Stats      { return s.stats }
func (s *Shotgun) Ammo() int         { return s.ammo }
func (s *Shotgun) Capacity() int     { return s.capacity }
func (s *Shotgun) PelletKey() string { return s.pellet.Key() }

// Fire spends one shell and spawns the burst. Each pellet's orientation is
// rot offset by an independent uniform angle in [-spread, spread] on every
// axis. The returned impulse is the recoil to apply to the shooter; ok is
// false when the magazine is empty.
func (s *Shotgun) Fire(origin geom.Vec3, rot geom.Quat) (impulse geom.Vec3, ok bool) {
	if s.ammo <= 0 {
		return geom.Zero, false
	}
	s.ammo--
	s.grounded = false

	spread := s.stats.Spread()
	for i := 0; i < s.stats.ProjectileCount(); i++ {
		offset := geom.Euler(s.jitter(spread), s.jitter(spread), s.jitter(spread))
		p := s.reg.Acquire(s.pellet, origin, rot.Mul(offset)).(*world.Projectile)
		p.OnHit = s.onEnemyHit
	}
	return rot.Forward().Scale(-s.stats.Recoil()), true
}

func (s *Shotgun) jitter(spread float64) float64 {
	if spread == 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * spread
}

// onEnemyHit refunds a shell for every kill.
func (s *Shotgun) onEnemyHit(result float64) {
	if result == combat.Killed {
		s.reload(1)
	}
}

// TouchGround records that the player has landed since the last shot.
func (s *Shotgun) TouchGround() { s.grounded = true }

// Reload fills the magazine. It is refused until the player has touched the
// ground since the last shot.
func (s *Shotgun) Reload() bool {
	if !s.grounded {
		return false
	}
	s.ammo = s.capacity
	return true
}

func (s *Shotgun) reload(n int) {
	s.ammo = min(s.ammo+n, s.capacity)
}

// Apply swaps in next wholesale. When a stat baked into pellets changed, the
// pellet pool is purged so no stale pellet is reused.
func (s *Shotgun) Apply(next Stats) {
	prev := s.stats
	s.stats = next
	if !prev.PelletChanged(next) {
		return
	}
	key := s.pellet.Key()
	if !s.reg.Has(key) {
		return
	}
	n, _ := s.reg.Purge(key)
	if s.bus != nil {
		event.Emit(s.bus, event.PoolPurged{Key: key, Destroyed: n})
	}
	s.log.Info("pellet pool purged",
		zap.String("key", key),
		zap.Int("destroyed", n),
		zap.Float64("damage", next.Damage()),
		zap.Float64("speed", next.ProjectileSpeed()),
	)
}

// Upgrade applies u on top of the current stats.
func (s *Shotgun) Upgrade(u data.Upgrade) Stats {
	s.Apply(s.stats.Upgrade(u))
	s.log.Info("weapon upgraded",
		zap.String("upgrade", u.Name),
		zap.Int("pellets", s.stats.ProjectileCount()),
		zap.Float64("spread", s.stats.Spread()),
	)
	return s.stats
}
