package world

import (
	"sort"
	"time"

	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/geom"
)

// State is the simulation's in-memory world: the player plus every pooled
// enemy and projectile ever constructed. Parked instances stay in the stores
// until purged; iteration helpers skip them.
// Accessed only from the simulation goroutine, no locks needed.
type State struct {
	Clock time.Duration

	Player      *Player
	Enemies     *ecs.PtrComponentStore[Enemy]
	Projectiles *ecs.PtrComponentStore[Projectile]

	GroundY    float64 // terrain plane
	BodyRadius float64 // enemy collision radius
	Wave       int
	Commons    int // common pickups dropped so far

	grid *AOIGrid
}

func NewState(w *ecs.World, player *Player) *State {
	s := &State{
		Player:      player,
		Enemies:     ecs.NewPtrComponentStore[Enemy](),
		Projectiles: ecs.NewPtrComponentStore[Projectile](),
		BodyRadius:  0.5,
		grid:        NewAOIGrid(8),
	}
	w.Registry().Register(s.Enemies)
	w.Registry().Register(s.Projectiles)
	return s
}

// Now returns simulated time since the session started.
func (s *State) Now() time.Duration { return s.Clock }

// Advance moves the simulation clock forward by dt.
func (s *State) Advance(dt time.Duration) { s.Clock += dt }

// ActiveEnemies returns every active enemy ordered by entity ID.
func (s *State) ActiveEnemies() []*Enemy {
	var out []*Enemy
	s.Enemies.Each(func(_ ecs.EntityID, e *Enemy) {
		if e.Active() {
			out = append(out, e)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// ActiveProjectiles returns every active projectile ordered by entity ID.
func (s *State) ActiveProjectiles() []*Projectile {
	var out []*Projectile
	s.Projectiles.Each(func(_ ecs.EntityID, p *Projectile) {
		if p.Active() {
			out = append(out, p)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// NearestEnemy returns the closest living active enemy to pos.
func (s *State) NearestEnemy(pos geom.Vec3) (*Enemy, bool) {
	var best *Enemy
	bestD := 0.0
	for _, e := range s.ActiveEnemies() {
		if e.Dead() {
			continue
		}
		d := geom.Distance(pos, e.Position)
		if best == nil || d < bestD {
			best, bestD = e, d
		}
	}
	return best, best != nil
}

// RebuildGrid re-indexes active living enemies. Called once per tick before
// projectile contacts are resolved.
func (s *State) RebuildGrid() {
	s.grid.Clear()
	s.Enemies.Each(func(id ecs.EntityID, e *Enemy) {
		if e.Active() && !e.Dead() {
			s.grid.Add(id, e.Position)
		}
	})
}
