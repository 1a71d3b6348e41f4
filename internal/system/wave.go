package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/skyshot/arena/internal/core/event"
	coresys "github.com/skyshot/arena/internal/core/system"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/world"
	"go.uber.org/zap"
)

// WaveSystem spawns waves from the spawn list. A wave is cleared once every
// enemy it spawned has been released; the next one starts after the wave
// interval. The list repeats once exhausted, with wave numbers still rising.
// Phase 2 (Update).
type WaveSystem struct {
	state    *world.State
	factory  *EnemyFactory
	bus      *event.Bus
	waves    []data.Wave
	interval time.Duration
	rng      *rand.Rand
	log      *zap.Logger

	next     int // index of the next wave to spawn
	live     bool
	cooldown time.Duration
}

func NewWaveSystem(ws *world.State, factory *EnemyFactory, bus *event.Bus, waves []data.Wave,
	interval time.Duration, rng *rand.Rand, log *zap.Logger) *WaveSystem {
	return &WaveSystem{
		state:    ws,
		factory:  factory,
		bus:      bus,
		waves:    waves,
		interval: interval,
		rng:      rng,
		log:      log,
	}
}

func (s *WaveSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *WaveSystem) Update(dt time.Duration) {
	if len(s.waves) == 0 {
		return
	}
	if s.live {
		if len(s.state.ActiveEnemies()) > 0 {
			return
		}
		s.live = false
		s.cooldown = s.interval
		event.Emit(s.bus, event.WaveCleared{Wave: s.state.Wave})
		s.log.Info("wave cleared", zap.Int("wave", s.state.Wave))
		return
	}
	s.cooldown -= dt
	if s.cooldown > 0 {
		return
	}
	s.spawnNext()
}

func (s *WaveSystem) spawnNext() {
	w := s.waves[s.next%len(s.waves)]
	s.next++
	number := s.next
	s.state.Wave = number

	center := s.state.Player.Pos
	total := 0
	for _, entry := range w.Spawns {
		for i := 0; i < entry.Count; i++ {
			angle := 2*math.Pi*float64(i)/float64(entry.Count) + s.rng.Float64()*0.25
			pos := geom.V(
				center.X+math.Cos(angle)*entry.Radius,
				s.state.GroundY+entry.Height,
				center.Z+math.Sin(angle)*entry.Radius,
			)
			if s.factory.Spawn(entry.Key, pos, number) != nil {
				total++
			}
		}
	}

	event.Emit(s.bus, event.WaveStarted{Wave: number, Enemies: total})
	s.log.Info("wave started", zap.Int("wave", number), zap.Int("enemies", total))
	if total == 0 {
		s.cooldown = s.interval
		return
	}
	s.live = true
}

// Live reports whether a wave is in progress.
func (s *WaveSystem) Live() bool { return s.live }
