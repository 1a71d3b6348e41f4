package world_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/skyshot/arena/internal/combat"
	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
	"github.com/skyshot/arena/internal/world"
	"go.uber.org/zap"
)

func newWorld(t *testing.T) (*ecs.World, *world.State, *pool.Registry) {
	t.Helper()
	w := ecs.NewWorld()
	st := world.NewState(w, world.NewPlayer(100, 1, 0))
	return w, st, pool.NewRegistry(w, zap.NewNop())
}

func crawler(st *world.State, reg *pool.Registry) *world.EnemyPrototype {
	return &world.EnemyPrototype{
		Template: &data.EnemyTemplate{Key: "Crawler", Kind: data.KindGround, MaxHealth: 10, Damage: 3},
		State:    st,
		Registry: reg,
	}
}

func pellet(st *world.State, reg *pool.Registry, f world.Faction) *world.ProjectilePrototype {
	return &world.ProjectilePrototype{
		Name: "Pellet",
		Spec: func() world.ProjectileSpec {
			return world.ProjectileSpec{Damage: 1, Speed: 10, Lifetime: time.Second, Radius: 0.1, Faction: f}
		},
		State:    st,
		Registry: reg,
	}
}

func TestEnemyReactivationResetsHealth(t *testing.T) {
	_, st, reg := newWorld(t)
	proto := crawler(st, reg)

	e := reg.Acquire(proto, geom.V(0, 0, 5), geom.Identity).(*world.Enemy)
	if got := e.TakeDamage(10); got != combat.Killed {
		t.Fatalf("killing blow: got %v, want Killed", got)
	}
	if reg.ActiveCount("Crawler") != 0 || reg.InactiveCount("Crawler") != 1 {
		t.Fatalf("dead enemy not parked: active=%d inactive=%d",
			reg.ActiveCount("Crawler"), reg.InactiveCount("Crawler"))
	}

	again := reg.Acquire(proto, geom.V(1, 0, 1), geom.Identity).(*world.Enemy)
	if again != e {
		t.Fatal("expected the parked enemy to be reused")
	}
	if again.Dead() || again.Current != 10 {
		t.Fatalf("reused enemy not reset: dead=%v health=%v", again.Dead(), again.Current)
	}
	if len(st.ActiveEnemies()) != 1 {
		t.Fatalf("active enemies = %d, want 1", len(st.ActiveEnemies()))
	}
}

func TestFriendlyProjectileContactsEnemy(t *testing.T) {
	_, st, reg := newWorld(t)
	e := reg.Acquire(crawler(st, reg), geom.V(0, 1, 5), geom.Identity).(*world.Enemy)
	p := reg.Acquire(pellet(st, reg, world.Friendly), geom.V(0.2, 1, 5), geom.Identity).(*world.Projectile)
	st.RebuildGrid()

	cs := st.Contacts(p)
	if len(cs) != 1 || cs[0].Kind != world.ContactDamageable {
		t.Fatalf("contacts = %+v, want one damageable", cs)
	}
	if cs[0].Target != combat.Damageable(e) {
		t.Fatal("contact target is not the enemy")
	}
}

func TestHostileProjectilePassesThroughEnemies(t *testing.T) {
	_, st, reg := newWorld(t)
	reg.Acquire(crawler(st, reg), geom.V(0, 1, 5), geom.Identity)
	p := reg.Acquire(pellet(st, reg, world.Hostile), geom.V(0, 1, 5), geom.Identity).(*world.Projectile)
	st.RebuildGrid()

	cs := st.Contacts(p)
	if len(cs) != 1 || cs[0].Kind != world.ContactOther {
		t.Fatalf("contacts = %+v, want one ignored contact", cs)
	}

	st.Player.Pos = geom.V(0, 1, 5)
	cs = st.Contacts(p)
	if len(cs) == 0 || cs[0].Kind != world.ContactDamageable || cs[0].Target != combat.Damageable(st.Player) {
		t.Fatalf("contacts = %+v, want player first", cs)
	}
}

func TestProjectileBelowGroundTouchesTerrain(t *testing.T) {
	_, st, reg := newWorld(t)
	p := reg.Acquire(pellet(st, reg, world.Friendly), geom.V(0, -0.1, 30), geom.Identity).(*world.Projectile)
	st.RebuildGrid()

	cs := st.Contacts(p)
	if len(cs) != 1 || cs[0].Kind != world.ContactTerrain {
		t.Fatalf("contacts = %+v, want terrain", cs)
	}
}

func TestProjectileActivationLaunchesAlongForward(t *testing.T) {
	_, st, reg := newWorld(t)
	p := reg.Acquire(pellet(st, reg, world.Friendly), geom.Zero, geom.Identity).(*world.Projectile)
	if p.Remaining != time.Second {
		t.Fatalf("remaining = %v, want 1s", p.Remaining)
	}
	if geom.Distance(p.Velocity, geom.Forward.Scale(10)) > 1e-9 {
		t.Fatalf("velocity = %+v", p.Velocity)
	}
	reg.Release(p)
	if p.Velocity != geom.Zero {
		t.Fatal("parked projectile still moving")
	}
}

func TestAgentWalksOnPlane(t *testing.T) {
	_, st, reg := newWorld(t)
	e := reg.Acquire(crawler(st, reg), geom.V(0, 2, 0), geom.Identity).(*world.Enemy)
	a := world.NewAgent(&e.Tag, 2)

	a.SetDestination(geom.V(10, 0, 0))
	a.Step(time.Second)
	if geom.Distance(e.Position, geom.V(2, 2, 0)) > 1e-9 {
		t.Fatalf("position = %+v, want (2,2,0)", e.Position)
	}

	a.SetStopped(true)
	a.Step(time.Second)
	if e.Position.X != 2 {
		t.Fatalf("stopped agent moved to %+v", e.Position)
	}
}

func TestDropperCountsCommons(t *testing.T) {
	_, st, _ := newWorld(t)
	d := world.NewDropper([]data.DropItem{
		{Item: world.CommonItem, Min: 2, Max: 2, Chance: 1_000_000},
		{Item: "rare", Min: 1, Max: 1, Chance: 0},
	}, st, rand.New(rand.NewSource(1)), zap.NewNop())

	d.DropCommons()
	d.DropCommons()
	if st.Commons != 4 {
		t.Fatalf("commons = %d, want 4", st.Commons)
	}
}

func TestNearestEnemySkipsParked(t *testing.T) {
	_, st, reg := newWorld(t)
	proto := crawler(st, reg)
	near := reg.Acquire(proto, geom.V(0, 0, 1), geom.Identity).(*world.Enemy)
	far := reg.Acquire(proto, geom.V(0, 0, 9), geom.Identity).(*world.Enemy)
	reg.Release(near)

	got, ok := st.NearestEnemy(geom.Zero)
	if !ok || got != far {
		t.Fatal("nearest enemy should skip parked instances")
	}
}

func TestPlayerRecoilLeavesAndRegainsGround(t *testing.T) {
	p := world.NewPlayer(100, 1, 0)
	p.Push(geom.V(0, 5, -2))
	if p.Grounded {
		t.Fatal("upward push should leave the ground")
	}

	landed := false
	for i := 0; i < 200 && !landed; i++ {
		landed = p.Integrate(20*time.Millisecond, 9.81, 0)
	}
	if !landed || !p.Grounded {
		t.Fatal("player never landed")
	}
	if p.Pos.Y != 0 || p.Velocity != geom.Zero {
		t.Fatalf("landing state pos=%+v vel=%+v", p.Pos, p.Velocity)
	}
	if p.Pos.Z >= 0 {
		t.Fatalf("recoil did not push backward: %+v", p.Pos)
	}
}
