package world

import (
	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/geom"
)

// ContactKind classifies what a projectile touched.
type ContactKind int

const (
	ContactOther      ContactKind = iota // ignored
	ContactDamageable                    // receives damage, consumes the projectile
	ContactTerrain                       // consumes the projectile without damage
)

func (k ContactKind) String() string {
	switch k {
	case ContactDamageable:
		return "damageable"
	case ContactTerrain:
		return "terrain"
	}
	return "other"
}

// Contact is one overlap reported for a projectile this tick.
type Contact struct {
	Kind   ContactKind
	Target combat.Damageable
}

// Contacts lists what p overlaps, damageable targets first. Friendly
// projectiles see enemies as damageable; hostile projectiles see the player
// as damageable and pass through enemies. Call RebuildGrid first.
func (s *State) Contacts(p *Projectile) []Contact {
	var out []Contact
	reach := p.Radius + s.BodyRadius

	switch p.Faction {
	case Friendly:
		for _, id := range s.grid.GetNearby(p.Position) {
			e, ok := s.Enemies.Get(id)
			if !ok || !e.Active() || e.Dead() {
				continue
			}
			if geom.Distance(p.Position, e.Position) <= reach {
				out = append(out, Contact{Kind: ContactDamageable, Target: e})
			}
		}
	case Hostile:
		if s.Player != nil && geom.Distance(p.Position, s.Player.Pos) <= reach {
			out = append(out, Contact{Kind: ContactDamageable, Target: s.Player})
		}
		for _, id := range s.grid.GetNearby(p.Position) {
			if e, ok := s.Enemies.Get(id); ok && geom.Distance(p.Position, e.Position) <= reach {
				out = append(out, Contact{Kind: ContactOther})
			}
		}
	}

	if p.Position.Y <= s.GroundY {
		out = append(out, Contact{Kind: ContactTerrain})
	}
	return out
}
