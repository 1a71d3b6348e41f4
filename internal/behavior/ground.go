// Package behavior holds the per-tick decision logic of enemies and
// projectiles. Behaviors operate on world types and stop as soon as their
// owner's pool tag goes inactive.
package behavior

import (
	"time"

	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/world"
)

// Zone is the distance band a grounded enemy is in this tick.
type Zone int

const (
	ZoneNone     Zone = iota // no target or navigator; nothing happened
	ZoneApproach             // beyond attack range: walk straight at the target
	ZoneAttack               // inside attack range: hold the standoff ring and attack
	ZoneClose                // inside the buffer: stop and attack
)

func (z Zone) String() string {
	switch z {
	case ZoneApproach:
		return "approach"
	case ZoneAttack:
		return "attack"
	case ZoneClose:
		return "close"
	}
	return "none"
}

// Classify maps a distance to its zone. The buffer is checked before the
// attack range, so a buffer wider than the range always yields ZoneClose.
func Classify(distance, attackRange, bufferRange float64) Zone {
	switch {
	case distance <= bufferRange:
		return ZoneClose
	case distance <= attackRange:
		return ZoneAttack
	default:
		return ZoneApproach
	}
}

// Pursuit is the grounded melee brain. It keeps no zone state between ticks;
// the only memory is the attack cooldown.
type Pursuit struct {
	Self   *pool.Tag
	Health *combat.Health
	Nav    world.Navigator
	Target world.Locatable

	AttackRange float64
	BufferRange float64
	Cooldown    time.Duration

	nextAttack time.Duration
	attacks    int
}

// Reset clears the cooldown so a reused enemy may strike immediately.
func (p *Pursuit) Reset() {
	p.nextAttack = 0
}

func (p *Pursuit) Tick(_, now time.Duration) { p.Step(now) }

// Step runs one decision and reports the zone acted on.
func (p *Pursuit) Step(now time.Duration) Zone {
	if p.Self == nil || !p.Self.Active() || p.Target == nil || p.Nav == nil {
		return ZoneNone
	}
	if p.Health != nil && p.Health.Dead() {
		return ZoneNone
	}

	self := p.Self.Position
	target := p.Target.Position()
	zone := Classify(geom.Distance(self, target), p.AttackRange, p.BufferRange)

	switch zone {
	case ZoneClose:
		p.Nav.SetStopped(true)
		p.attempt(now)
	case ZoneAttack:
		p.Nav.SetStopped(false)
		dir := target.Sub(self).Normalize()
		p.Nav.SetDestination(target.Sub(dir.Scale(p.BufferRange)))
		p.attempt(now)
	case ZoneApproach:
		p.Nav.SetStopped(false)
		p.Nav.SetDestination(target)
	}
	return zone
}

func (p *Pursuit) attempt(now time.Duration) {
	if now < p.nextAttack {
		return
	}
	if p.Health != nil {
		p.Health.DealDamageToTarget()
	}
	p.attacks++
	p.nextAttack = now + p.Cooldown
}

// Attacks returns how many attacks have fired since construction.
func (p *Pursuit) Attacks() int { return p.attacks }

// NextAttack returns the earliest time the next attack may fire.
func (p *Pursuit) NextAttack() time.Duration { return p.nextAttack }
