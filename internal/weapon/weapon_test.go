package weapon_test

import (
	"math/rand"
	"testing"

	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/core/event"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/weapon"
	"github.com/skyshot/arena/internal/world"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

var baseDef = data.ShotgunDef{
	Spread:          10,
	ProjectileCount: 8,
	Recoil:          50,
	ProjectileSpeed: 50,
	Damage:          1,
	Scale:           [3]float64{0.1, 0.1, 0.1},
	Capacity:        2,
	Pellet:          "ShotgunPellet",
	Lifetime:        5000,
}

var slug = data.Upgrade{
	Name: "Slug", Kind: data.UpgradeSlug,
	SpreadAdj: -2, DamageAdj: 5, CountAdj: -5, RecoilAdj: -10, SpeedAdj: 10,
	ScaleAdj: [3]float64{0.1, 0.1, 0.1},
}

var blast = data.Upgrade{
	Name: "Blast", Kind: data.UpgradeBlast,
	SpreadAdj: 2, DamageAdj: -2, CountAdj: 10, RecoilAdj: 10, SpeedAdj: 10,
}

type rig struct {
	state *world.State
	reg   *pool.Registry
	bus   *event.Bus
	gun   *weapon.Shotgun
}

func newRig(t *testing.T, def data.ShotgunDef) *rig {
	t.Helper()
	w := ecs.NewWorld()
	st := world.NewState(w, world.NewPlayer(100, 1, 0))
	reg := pool.NewRegistry(w, zap.NewNop())
	bus := event.NewBus()
	return &rig{
		state: st,
		reg:   reg,
		bus:   bus,
		gun:   weapon.NewShotgun(def, 0.1, st, reg, bus, rand.New(rand.NewSource(42)), zap.NewNop()),
	}
}

func TestFireSpawnsBurstWithinSpread(t *testing.T) {
	r := newRig(t, baseDef)
	impulse, ok := r.gun.Fire(geom.V(0, 1, 0), geom.Identity)
	if !ok {
		t.Fatal("loaded gun refused to fire")
	}
	if geom.Distance(impulse, geom.V(0, 0, -50)) > 1e-9 {
		t.Fatalf("recoil = %+v, want (0,0,-50)", impulse)
	}

	pellets := r.state.ActiveProjectiles()
	if len(pellets) != 8 {
		t.Fatalf("pellets = %d, want 8", len(pellets))
	}
	// a composed rotation turns by at most the sum of its parts
	limit := 3*10.0 + 1e-6
	distinct := map[geom.Vec3]bool{}
	for _, p := range pellets {
		fwd := p.Forward()
		if a := geom.Angle(fwd, geom.Forward); a > limit {
			t.Fatalf("pellet deviates %v degrees", a)
		}
		if p.Damage != 1 || p.Speed != 50 || p.Faction != world.Friendly {
			t.Fatalf("pellet stamp = %+v", p.ProjectileSpec)
		}
		distinct[fwd] = true
	}
	if len(distinct) < 2 {
		t.Fatal("pellets share one direction; spread not applied")
	}
	if r.gun.Ammo() != 1 {
		t.Fatalf("ammo = %d, want 1", r.gun.Ammo())
	}
}

func TestFireWithEmptyMagazine(t *testing.T) {
	r := newRig(t, baseDef)
	r.gun.Fire(geom.Zero, geom.Identity)
	r.gun.Fire(geom.Zero, geom.Identity)
	if _, ok := r.gun.Fire(geom.Zero, geom.Identity); ok {
		t.Fatal("empty gun fired")
	}
	if n := len(r.state.ActiveProjectiles()); n != 16 {
		t.Fatalf("pellets = %d, want 16", n)
	}
}

func TestReloadNeedsGroundTouch(t *testing.T) {
	r := newRig(t, baseDef)
	r.gun.Fire(geom.Zero, geom.Identity)
	if r.gun.Reload() {
		t.Fatal("reloaded mid-air")
	}
	r.gun.TouchGround()
	if !r.gun.Reload() || r.gun.Ammo() != 2 {
		t.Fatalf("reload after landing: ammo = %d", r.gun.Ammo())
	}
}

func TestKillRefundsShell(t *testing.T) {
	r := newRig(t, baseDef)
	r.gun.Fire(geom.Zero, geom.Identity)
	pellets := r.state.ActiveProjectiles()

	pellets[0].OnHit(3) // survived
	if r.gun.Ammo() != 1 {
		t.Fatalf("non-lethal hit refunded: ammo = %d", r.gun.Ammo())
	}
	pellets[1].OnHit(combat.Killed)
	if r.gun.Ammo() != 2 {
		t.Fatalf("kill refund: ammo = %d, want 2", r.gun.Ammo())
	}
	pellets[2].OnHit(combat.Killed)
	if r.gun.Ammo() != 2 {
		t.Fatalf("refund overfilled: ammo = %d", r.gun.Ammo())
	}
}

func TestSlugUpgrade(t *testing.T) {
	base := weapon.NewStats(data.ShotgunDef{
		Spread: 10, ProjectileCount: 10, Recoil: 50, ProjectileSpeed: 50, Damage: 1,
		Scale: [3]float64{0.1, 0.1, 0.1},
	})
	got := base.Upgrade(slug)

	if got.ProjectileCount() != 1 {
		t.Errorf("count = %d, want 1 (10 / -5 clamps)", got.ProjectileCount())
	}
	if got.Spread() != 8 || got.Damage() != 6 || got.Recoil() != 40 || got.ProjectileSpeed() != 60 {
		t.Errorf("slug stats = spread %v damage %v recoil %v speed %v",
			got.Spread(), got.Damage(), got.Recoil(), got.ProjectileSpeed())
	}
	if geom.Distance(got.Scale(), geom.V(0.2, 0.2, 0.2)) > 1e-9 {
		t.Errorf("scale = %+v", got.Scale())
	}
	if base.ProjectileCount() != 10 {
		t.Error("upgrade mutated the receiver")
	}
}

func TestBlastUpgrade(t *testing.T) {
	base := weapon.NewStats(data.ShotgunDef{
		Spread: 10, ProjectileCount: 10, Recoil: 50, ProjectileSpeed: 95, Damage: 1,
	})
	got := base.Upgrade(blast)

	if got.ProjectileCount() != 100 {
		t.Errorf("count = %d, want 100", got.ProjectileCount())
	}
	if got.Damage() != 1 {
		t.Errorf("damage = %v, want floor of 1", got.Damage())
	}
	if got.ProjectileSpeed() != 100 {
		t.Errorf("speed = %v, want cap of 100", got.ProjectileSpeed())
	}
	if again := got.Upgrade(blast); again.ProjectileCount() != weapon.MaxCount {
		t.Errorf("second blast count = %d, want %d", again.ProjectileCount(), weapon.MaxCount)
	}
}

func TestApplyPurgesPelletPoolOnDamageChange(t *testing.T) {
	r := newRig(t, baseDef)
	key := r.gun.PelletKey()
	r.gun.Fire(geom.Zero, geom.Identity)
	if r.reg.Constructed(key) != 8 {
		t.Fatalf("constructed = %d", r.reg.Constructed(key))
	}

	r.gun.Apply(r.gun.Stats().WithDamage(4))
	if r.reg.ActiveCount(key) != 0 || r.reg.InactiveCount(key) != 0 {
		t.Fatal("pellet pool not purged")
	}

	var purged []event.PoolPurged
	event.Subscribe(r.bus, func(e event.PoolPurged) { purged = append(purged, e) })
	r.bus.SwapBuffers()
	r.bus.DispatchAll()
	if len(purged) != 1 || purged[0].Destroyed != 8 || purged[0].Key != key {
		t.Fatalf("purge events = %+v", purged)
	}

	r.gun.TouchGround()
	r.gun.Reload()
	r.gun.Fire(geom.Zero, geom.Identity)
	for _, p := range r.state.ActiveProjectiles() {
		if p.Damage != 4 {
			t.Fatalf("fresh pellet damage = %v, want 4", p.Damage)
		}
	}
}

func TestApplyKeepsPoolWhenOnlySpreadChanges(t *testing.T) {
	r := newRig(t, baseDef)
	r.gun.Fire(geom.Zero, geom.Identity)
	r.gun.Apply(r.gun.Stats().WithSpread(30).WithRecoil(10).WithProjectileCount(3))
	if r.reg.ActiveCount("ShotgunPellet") != 8 {
		t.Fatalf("pool purged on a non-pellet change: active = %d", r.reg.ActiveCount("ShotgunPellet"))
	}
}

func TestSettersClamp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := weapon.Stats{}.
			WithSpread(rapid.Float64Range(-1e4, 1e4).Draw(t, "spread")).
			WithProjectileCount(rapid.IntRange(-1000, 1000).Draw(t, "count")).
			WithRecoil(rapid.Float64Range(-1e4, 1e4).Draw(t, "recoil")).
			WithProjectileSpeed(rapid.Float64Range(-1e4, 1e4).Draw(t, "speed")).
			WithDamage(rapid.Float64Range(-1e4, 1e4).Draw(t, "damage"))

		if s.Spread() < 0 || s.Spread() > weapon.MaxSpread {
			t.Fatalf("spread %v", s.Spread())
		}
		if s.ProjectileCount() < weapon.MinCount || s.ProjectileCount() > weapon.MaxCount {
			t.Fatalf("count %v", s.ProjectileCount())
		}
		if s.Recoil() < 0 || s.Recoil() > weapon.MaxRecoil {
			t.Fatalf("recoil %v", s.Recoil())
		}
		if s.ProjectileSpeed() < weapon.MinSpeed || s.ProjectileSpeed() > weapon.MaxSpeed {
			t.Fatalf("speed %v", s.ProjectileSpeed())
		}
		if s.Damage() < weapon.MinDamage {
			t.Fatalf("damage %v", s.Damage())
		}
	})
}
