package behavior

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/skyshot/arena/internal/config"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/world"
)

// ErrNoWaypoints is returned by NewAerial when the flier has nowhere to circle.
var ErrNoWaypoints = errors.New("aerial: empty waypoint set")

// Phase is the top-level state of an aerial enemy.
type Phase int

const (
	PhaseIdle Phase = iota // not started since the last Reset
	PhaseCircling
	PhaseAttacking
)

func (p Phase) String() string {
	switch p {
	case PhaseCircling:
		return "circling"
	case PhaseAttacking:
		return "attacking"
	}
	return "idle"
}

// AttackStep is the sub-state of PhaseAttacking.
type AttackStep int

const (
	StepAligning AttackStep = iota // turning toward the target, no shots yet
	StepEngaged                    // facing the target, firing on an interval
)

// Aerial alternates circling a waypoint set with attacking the target, each
// phase lasting a freshly jittered duration. It is driven one tick at a time
// and stops advancing while its owner is parked.
type Aerial struct {
	Self      *pool.Tag
	Target    world.Locatable
	Waypoints []geom.Vec3
	Cfg       config.AerialConfig
	// Fire is called with the target position for every shot.
	Fire func(target geom.Vec3)

	rng *rand.Rand

	phase     Phase
	step      AttackStep
	elapsed   time.Duration
	duration  time.Duration
	shotTimer time.Duration
	waypoint  geom.Vec3
	shots     int
}

func NewAerial(self *pool.Tag, target world.Locatable, waypoints []geom.Vec3,
	cfg config.AerialConfig, rng *rand.Rand, fire func(geom.Vec3)) (*Aerial, error) {
	if len(waypoints) == 0 {
		return nil, ErrNoWaypoints
	}
	return &Aerial{
		Self:      self,
		Target:    target,
		Waypoints: waypoints,
		Cfg:       cfg,
		Fire:      fire,
		rng:       rng,
	}, nil
}

// Reset drops the running cycle. The next tick starts over with circling.
func (a *Aerial) Reset() {
	a.phase = PhaseIdle
	a.step = StepAligning
	a.elapsed = 0
	a.duration = 0
	a.shotTimer = 0
}

func (a *Aerial) Tick(dt, _ time.Duration) { a.Step(dt) }

// Step advances the choreography by dt and reports whether a phase was
// entered during this tick.
func (a *Aerial) Step(dt time.Duration) bool {
	if a.Self == nil || !a.Self.Active() {
		return false
	}
	switch a.phase {
	case PhaseIdle:
		a.enterCircling()
		a.circle(dt)
		return true
	case PhaseCircling:
		return a.circle(dt)
	case PhaseAttacking:
		return a.attack(dt)
	}
	return false
}

// jitter samples base + U(-spread, spread), floored at zero. A zero duration
// still runs its phase for one tick.
func (a *Aerial) jitter(base, spread time.Duration) time.Duration {
	d := base
	if spread > 0 {
		d += time.Duration((a.rng.Float64()*2 - 1) * float64(spread))
	}
	if d < 0 {
		d = 0
	}
	return d
}

func (a *Aerial) enterCircling() {
	a.phase = PhaseCircling
	a.elapsed = 0
	a.duration = a.jitter(a.Cfg.CircleDuration, a.Cfg.CircleJitter)
	a.pickWaypoint()
}

func (a *Aerial) enterAttacking() {
	a.phase = PhaseAttacking
	a.step = StepAligning
	a.elapsed = 0
	a.shotTimer = 0
	a.duration = a.jitter(a.Cfg.AttackDuration, a.Cfg.AttackJitter)
}

func (a *Aerial) pickWaypoint() {
	a.waypoint = a.Waypoints[a.rng.Intn(len(a.Waypoints))]
}

func (a *Aerial) circle(dt time.Duration) bool {
	a.elapsed += dt
	a.moveTowards(a.waypoint, dt)
	if geom.Distance(a.Self.Position, a.waypoint) < a.Cfg.WaypointThreshold {
		a.pickWaypoint()
	}
	if a.elapsed >= a.duration {
		a.enterAttacking()
		return true
	}
	return false
}

func (a *Aerial) attack(dt time.Duration) bool {
	a.elapsed += dt
	if a.Target == nil {
		if a.elapsed >= a.duration {
			a.enterCircling()
			return true
		}
		return false
	}
	target := a.Target.Position()

	if a.step == StepAligning {
		if a.facing(target) {
			a.shoot(target)
			a.step = StepEngaged
			a.elapsed = 0
			a.shotTimer = 0
			return false
		}
		a.face(target, dt)
		// The wait for alignment is bounded by the phase; a timeout fires nothing.
		if a.elapsed >= a.duration {
			a.enterCircling()
			return true
		}
		return false
	}

	a.shotTimer += dt
	a.face(target, dt)
	if geom.Distance(a.Self.Position, target) > a.Cfg.AttackRange {
		a.moveTowards(target, dt)
	}
	if a.shotTimer >= a.Cfg.ShootInterval {
		a.shotTimer = 0
		a.shoot(target)
	}
	if a.elapsed >= a.duration {
		a.enterCircling()
		return true
	}
	return false
}

func (a *Aerial) facing(target geom.Vec3) bool {
	to := target.Sub(a.Self.Position)
	return geom.Angle(a.Self.Forward(), to) <= a.Cfg.AimThreshold
}

func (a *Aerial) face(target geom.Vec3, dt time.Duration) {
	dir := target.Sub(a.Self.Position)
	if dir.LenSq() < 1e-4 {
		return
	}
	t := math.Min(1, dt.Seconds()*a.Cfg.RotationSpeed)
	a.Self.Rotation = geom.Slerp(a.Self.Rotation, geom.LookRotation(dir), t)
}

func (a *Aerial) moveTowards(target geom.Vec3, dt time.Duration) {
	if target.Sub(a.Self.Position).LenSq() < 1e-4 {
		return
	}
	a.face(target, dt)
	a.Self.Position = geom.MoveTowards(a.Self.Position, target, a.Cfg.MoveSpeed*dt.Seconds())
}

func (a *Aerial) shoot(target geom.Vec3) {
	a.shots++
	if a.Fire != nil {
		a.Fire(target)
	}
}

func (a *Aerial) Phase() Phase { return a.phase }

func (a *Aerial) AttackStep() AttackStep { return a.step }

// PhaseDuration returns the sampled length of the running phase.
func (a *Aerial) PhaseDuration() time.Duration { return a.duration }

// Shots returns how many shots have been fired since construction.
func (a *Aerial) Shots() int { return a.shots }
