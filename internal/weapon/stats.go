// Package weapon implements the player's shotgun: an immutable stat snapshot,
// burst firing from the pellet pool, ammo, and upgrade application.
package weapon

import (
	"math"

	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/geom"
)

// Stat limits.
const (
	MaxSpread = 360
	MinCount  = 1
	MaxCount  = 200
	MaxRecoil = 500
	MinSpeed  = 1
	MaxSpeed  = 100
	MinDamage = 1
)

// Stats is a value snapshot of the shotgun. Every With* setter returns a
// clamped copy; the receiver never changes.
type Stats struct {
	spread float64
	count  int
	recoil float64
	speed  float64
	damage float64
	scale  geom.Vec3
}

// NewStats builds a clamped snapshot from a weapon definition.
func NewStats(def data.ShotgunDef) Stats {
	return Stats{}.
		WithSpread(def.Spread).
		WithProjectileCount(def.ProjectileCount).
		WithRecoil(def.Recoil).
		WithProjectileSpeed(def.ProjectileSpeed).
		WithDamage(def.Damage).
		WithScale(geom.V(def.Scale[0], def.Scale[1], def.Scale[2]))
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

func (s Stats) WithSpread(v float64) Stats {
	s.spread = clamp(v, 0, MaxSpread)
	return s
}

func (s Stats) WithProjectileCount(n int) Stats {
	s.count = min(max(n, MinCount), MaxCount)
	return s
}

func (s Stats) WithRecoil(v float64) Stats {
	s.recoil = clamp(v, 0, MaxRecoil)
	return s
}

func (s Stats) WithProjectileSpeed(v float64) Stats {
	s.speed = clamp(v, MinSpeed, MaxSpeed)
	return s
}

func (s Stats) WithDamage(v float64) Stats {
	s.damage = math.Max(v, MinDamage)
	return s
}

func (s Stats) WithScale(v geom.Vec3) Stats {
	s.scale = v
	return s
}

func (s Stats) Spread() float64          { return s.spread }
func (s Stats) ProjectileCount() int     { return s.count }
func (s Stats) Recoil() float64          { return s.recoil }
func (s Stats) ProjectileSpeed() float64 { return s.speed }
func (s Stats) Damage() float64          { return s.damage }
func (s Stats) Scale() geom.Vec3         { return s.scale }

// PelletChanged reports whether next differs from s in a stat that is baked
// into pellet instances at construction.
func (s Stats) PelletChanged(next Stats) bool {
	return s.speed != next.speed || s.damage != next.damage || s.scale != next.scale
}

// Upgrade applies u and returns the clamped result. Slug divides the pellet
// count by CountAdj and blast multiplies it; the remaining fields add.
func (s Stats) Upgrade(u data.Upgrade) Stats {
	count := s.count
	switch u.Kind {
	case data.UpgradeSlug:
		if u.CountAdj != 0 {
			count /= u.CountAdj
		}
	case data.UpgradeBlast:
		count *= u.CountAdj
	}
	adj := geom.V(u.ScaleAdj[0], u.ScaleAdj[1], u.ScaleAdj[2])
	return s.
		WithSpread(s.spread + u.SpreadAdj).
		WithProjectileCount(count).
		WithDamage(s.damage + u.DamageAdj).
		WithRecoil(s.recoil + u.RecoilAdj).
		WithProjectileSpeed(s.speed + u.SpeedAdj).
		WithScale(s.scale.Add(adj))
}
