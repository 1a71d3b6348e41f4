package system

import (
	"math/rand"
	"time"

	"github.com/skyshot/arena/internal/behavior"
	"github.com/skyshot/arena/internal/config"
	"github.com/skyshot/arena/internal/core/event"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/scripting"
	"github.com/skyshot/arena/internal/world"
	"go.uber.org/zap"
)

// Tables bundles the static data the simulation is built from.
type Tables struct {
	Enemies   *data.EnemyTable
	Waypoints *data.WaypointTable
	Drops     *data.DropTable
	Weapons   *data.WeaponTable
	Waves     []data.Wave
	Upgrades  []data.Upgrade
}

// EnemyFactory owns one prototype per enemy template and wires behavior,
// drops, mitigation, and kill events onto every enemy the pools construct.
type EnemyFactory struct {
	cfg    *config.Config
	state  *world.State
	reg    *pool.Registry
	bus    *event.Bus
	lua    *scripting.Engine
	tables Tables
	rng    *rand.Rand
	log    *zap.Logger

	protos map[string]*world.EnemyPrototype
	bolts  map[string]*world.ProjectilePrototype
}

func NewEnemyFactory(cfg *config.Config, ws *world.State, reg *pool.Registry, bus *event.Bus,
	lua *scripting.Engine, tables Tables, rng *rand.Rand, log *zap.Logger) *EnemyFactory {
	return &EnemyFactory{
		cfg:    cfg,
		state:  ws,
		reg:    reg,
		bus:    bus,
		lua:    lua,
		tables: tables,
		rng:    rng,
		log:    log,
		protos: make(map[string]*world.EnemyPrototype),
		bolts:  make(map[string]*world.ProjectilePrototype),
	}
}

// Prototype returns the prototype for an enemy key, or nil if no template
// exists.
func (f *EnemyFactory) Prototype(key string) *world.EnemyPrototype {
	if p, ok := f.protos[key]; ok {
		return p
	}
	if f.tables.Enemies == nil {
		return nil
	}
	tmpl := f.tables.Enemies.Get(key)
	if tmpl == nil {
		return nil
	}
	p := &world.EnemyPrototype{
		Template: tmpl,
		State:    f.state,
		Registry: f.reg,
		Setup:    f.setup,
	}
	f.protos[key] = p
	return p
}

// Spawn acquires an enemy of key at pos facing the player.
func (f *EnemyFactory) Spawn(key string, pos geom.Vec3, wave int) *world.Enemy {
	proto := f.Prototype(key)
	if proto == nil {
		f.log.Warn("spawn of unknown enemy", zap.String("key", key))
		return nil
	}
	look := f.state.Player.Pos.Sub(pos)
	look.Y = 0
	e := f.reg.Acquire(proto, pos, geom.LookRotation(look)).(*world.Enemy)
	e.Wave = wave
	return e
}

func (f *EnemyFactory) setup(e *world.Enemy) {
	tmpl := e.Template
	player := f.state.Player

	e.Health.Target = player
	if f.lua != nil {
		e.Mitigate = f.lua.StrengthHook(func() float64 { return player.Strength })
	}
	if f.tables.Drops != nil {
		if items := f.tables.Drops.Get(tmpl.Key); len(items) > 0 {
			e.Drops = world.NewDropper(items, f.state, f.rng, f.log)
		}
	}
	e.OnKilled = func() {
		event.Emit(f.bus, event.EnemyKilled{
			EntityID: e.ID(),
			Key:      tmpl.Key,
			Position: e.Position,
			Wave:     e.Wave,
			At:       f.state.Now(),
		})
	}

	switch tmpl.Kind {
	case data.KindGround:
		g := f.cfg.Ground
		agent := world.NewAgent(&e.Tag, orFloat(tmpl.MoveSpeed, g.MoveSpeed))
		e.Nav = agent
		e.Brain = &behavior.Pursuit{
			Self:        &e.Tag,
			Health:      &e.Health,
			Nav:         agent,
			Target:      player,
			AttackRange: orFloat(tmpl.AttackRange, g.AttackRange),
			BufferRange: orFloat(tmpl.BufferRange, g.BufferRange),
			Cooldown:    orDuration(tmpl.AttackCooldown, g.AttackCooldown),
		}
	case data.KindAerial:
		f.setupAerial(e)
	}
}

func (f *EnemyFactory) setupAerial(e *world.Enemy) {
	tmpl := e.Template
	cfg := f.cfg.Aerial
	cfg.MoveSpeed = orFloat(tmpl.MoveSpeed, cfg.MoveSpeed)
	cfg.AttackRange = orFloat(tmpl.AttackRange, cfg.AttackRange)

	var points []geom.Vec3
	if f.tables.Waypoints != nil {
		points = f.tables.Waypoints.Get(tmpl.WaypointSet)
	}
	bolt, lifetime := f.bolt(tmpl.Projectile)
	fire := func(target geom.Vec3) {
		behavior.Launch(f.reg, bolt, e.Position, target, cfg.ProjectileSpeed, float64(e.ContactDamage), lifetime)
	}
	a, err := behavior.NewAerial(&e.Tag, f.state.Player, points, cfg, f.rng, fire)
	if err != nil {
		f.log.Warn("aerial enemy left idle",
			zap.String("key", tmpl.Key),
			zap.String("waypoint_set", tmpl.WaypointSet),
			zap.Error(err),
		)
		return
	}
	e.Brain = a
}

// bolt returns the hostile projectile prototype for key, building it on
// first use from the weapon table or the projectile config.
func (f *EnemyFactory) bolt(key string) (*world.ProjectilePrototype, time.Duration) {
	if key == "" {
		key = "EnemyBolt"
	}
	pc := f.cfg.Projectile
	lifetime, radius := pc.Lifetime, pc.HitRadius
	if f.tables.Weapons != nil {
		if def := f.tables.Weapons.Bolt(key); def != nil {
			lifetime = orDuration(def.Lifetime, lifetime)
			radius = orFloat(def.Radius, radius)
		}
	}
	if p, ok := f.bolts[key]; ok {
		return p, lifetime
	}
	p := &world.ProjectilePrototype{
		Name: key,
		Spec: func() world.ProjectileSpec {
			return world.ProjectileSpec{
				Lifetime: lifetime,
				Radius:   radius,
				Faction:  world.Hostile,
			}
		},
		State:    f.state,
		Registry: f.reg,
	}
	f.bolts[key] = p
	return p, lifetime
}

func orFloat(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// orDuration reads v as milliseconds.
func orDuration(ms int, fallback time.Duration) time.Duration {
	if ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
