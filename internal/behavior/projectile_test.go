package behavior_test

import (
	"math"
	"testing"
	"time"

	"github.com/skyshot/arena/internal/behavior"
	"github.com/skyshot/arena/internal/combat"
	cmocks "github.com/skyshot/arena/internal/combat/mocks"
	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/world"
	"go.uber.org/mock/gomock"
)

func (f *fixture) bolt() *world.ProjectilePrototype {
	return &world.ProjectilePrototype{
		Name: "Bolt",
		Spec: func() world.ProjectileSpec {
			return world.ProjectileSpec{Damage: 1, Speed: 1, Lifetime: time.Second, Radius: 0.2, Faction: world.Hostile}
		},
		State:    f.state,
		Registry: f.reg,
	}
}

func TestLaunchAimsAtTarget(t *testing.T) {
	f := newFixture(t)
	p := behavior.Launch(f.reg, f.bolt(), geom.Zero, geom.V(10, 0, 0), 60, 4, 5*time.Second)

	if d := geom.Distance(p.Velocity, geom.V(60, 0, 0)); d > 1e-6 {
		t.Fatalf("velocity = %+v, want (60,0,0)", p.Velocity)
	}
	if p.Damage != 4 || p.Remaining != 5*time.Second {
		t.Fatalf("stamp: damage=%v remaining=%v", p.Damage, p.Remaining)
	}

	behavior.StepProjectile(p, 500*time.Millisecond, true)
	if math.Abs(p.Position.X-30) > 1e-6 {
		t.Fatalf("position = %+v after 0.5s", p.Position)
	}
}

func TestProjectileExpiryBoundary(t *testing.T) {
	cases := []struct {
		name      string
		inclusive bool
		expireOn  int
	}{
		{"inclusive", true, 5},
		{"exclusive", false, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			p := behavior.Launch(f.reg, f.bolt(), geom.V(0, 5, 0), geom.V(0, 5, 1), 1, 1, 5*time.Second)
			for tick := 1; tick <= 6; tick++ {
				expired := behavior.StepProjectile(p, time.Second, c.inclusive)
				if expired != (tick == c.expireOn) {
					t.Fatalf("tick %d: expired = %v", tick, expired)
				}
				if expired {
					break
				}
			}
			if p.Active() {
				t.Fatal("expired projectile still active")
			}
			if f.reg.InactiveCount("Bolt") != 1 {
				t.Fatal("expired projectile not parked")
			}
		})
	}
}

func TestOnContactSingleHit(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	target := cmocks.NewMockDamageable(ctrl)
	target.EXPECT().TakeDamage(7.0).Return(combat.Killed).Times(1)

	p := behavior.Launch(f.reg, f.bolt(), geom.Zero, geom.V(0, 0, 1), 10, 7, time.Second)
	var results []float64
	p.OnHit = func(r float64) { results = append(results, r) }

	hit := world.Contact{Kind: world.ContactDamageable, Target: target}
	if !behavior.OnContact(p, hit) {
		t.Fatal("damageable contact should consume the projectile")
	}
	if behavior.OnContact(p, hit) {
		t.Fatal("consumed projectile hit twice")
	}
	if len(results) != 1 || results[0] != combat.Killed {
		t.Fatalf("hit results = %v", results)
	}
}

func TestOnContactTerrainAndOther(t *testing.T) {
	f := newFixture(t)
	p := behavior.Launch(f.reg, f.bolt(), geom.Zero, geom.V(0, 0, 1), 10, 7, time.Second)

	if behavior.OnContact(p, world.Contact{Kind: world.ContactOther}) {
		t.Fatal("other contact consumed the projectile")
	}
	if !p.Active() {
		t.Fatal("projectile parked by an ignored contact")
	}
	if !behavior.OnContact(p, world.Contact{Kind: world.ContactTerrain}) {
		t.Fatal("terrain should consume the projectile")
	}
	if p.Active() {
		t.Fatal("projectile still active after terrain")
	}
}
