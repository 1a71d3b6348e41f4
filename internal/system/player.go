package system

import (
	"time"

	"github.com/skyshot/arena/internal/core/event"
	coresys "github.com/skyshot/arena/internal/core/system"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/scripting"
	"github.com/skyshot/arena/internal/weapon"
	"github.com/skyshot/arena/internal/world"
	"go.uber.org/zap"
)

// muzzleHeight is the shotgun's offset above the player's feet.
const muzzleHeight = 1.5

// PlayerSystem runs the headless player: physics, reloads, and an autopilot
// that fires at the nearest enemy on a fixed cadence. A dead player is
// revived in place. Phase 2 (Update).
type PlayerSystem struct {
	state    *world.State
	gun      *weapon.Shotgun
	bus      *event.Bus
	log      *zap.Logger
	interval time.Duration
	mass     float64
	gravity  float64

	cooldown time.Duration
	deaths   int
	shots    int
}

func NewPlayerSystem(ws *world.State, gun *weapon.Shotgun, bus *event.Bus, lua *scripting.Engine,
	interval time.Duration, mass, gravity float64, log *zap.Logger) *PlayerSystem {
	p := ws.Player
	if lua != nil {
		p.Mitigate = lua.DefenseHook(func() float64 { return p.Defense })
	}
	p.OnKilled = func() {
		event.Emit(bus, event.PlayerDied{Position: p.Pos})
	}
	if mass <= 0 {
		mass = 1
	}
	return &PlayerSystem{
		state:    ws,
		gun:      gun,
		bus:      bus,
		log:      log,
		interval: interval,
		mass:     mass,
		gravity:  gravity,
	}
}

func (s *PlayerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PlayerSystem) Update(dt time.Duration) {
	p := s.state.Player
	if p.Dead() {
		s.deaths++
		p.ResetOnActivate()
		s.log.Info("player revived", zap.Int("deaths", s.deaths), zap.Int("wave", s.state.Wave))
	}

	p.Integrate(dt, s.gravity, s.state.GroundY)
	if p.Grounded {
		s.gun.TouchGround()
	}
	if s.gun.Ammo() == 0 {
		s.gun.Reload()
	}

	s.cooldown -= dt
	if s.cooldown > 0 {
		return
	}
	target, ok := s.state.NearestEnemy(p.Pos)
	if !ok {
		return
	}
	muzzle := p.Pos.Add(geom.V(0, muzzleHeight, 0))
	impulse, fired := s.gun.Fire(muzzle, geom.LookRotation(target.Position.Sub(muzzle)))
	if !fired {
		return
	}
	s.shots++
	s.cooldown = s.interval
	p.Push(impulse.Scale(1 / s.mass))
}

// Deaths returns how many times the player has died.
func (s *PlayerSystem) Deaths() int { return s.deaths }

// Shots returns how many bursts the autopilot has fired.
func (s *PlayerSystem) Shots() int { return s.shots }
