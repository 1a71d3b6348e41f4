package world

import (
	"time"

	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/geom"
)

// Player is the damage sink for enemy attacks. It is not pooled.
type Player struct {
	combat.Health

	Pos      geom.Vec3
	Velocity geom.Vec3
	Strength float64
	Defense  float64
	Grounded bool
}

func NewPlayer(maxHP, strength, defense float64) *Player {
	return &Player{
		Health:   combat.NewHealth(maxHP, 0),
		Strength: strength,
		Defense:  defense,
		Grounded: true,
	}
}

func (p *Player) Position() geom.Vec3 { return p.Pos }

// Push adds an instantaneous velocity change. An upward result leaves the
// ground; otherwise a grounded player absorbs it.
func (p *Player) Push(dv geom.Vec3) {
	p.Velocity = p.Velocity.Add(dv)
	switch {
	case p.Velocity.Y > 0:
		p.Grounded = false
	case p.Grounded:
		p.Velocity = geom.Zero
	}
}

// Integrate applies gravity and velocity for one tick. Landing clamps to the
// ground plane and kills all motion. It reports whether the player landed
// during this tick.
func (p *Player) Integrate(dt time.Duration, gravity, groundY float64) bool {
	if p.Grounded {
		return false
	}
	sec := dt.Seconds()
	p.Velocity.Y -= gravity * sec
	p.Pos = p.Pos.Add(p.Velocity.Scale(sec))
	if p.Pos.Y > groundY {
		return false
	}
	p.Pos.Y = groundY
	p.Velocity = geom.Zero
	p.Grounded = true
	return true
}
