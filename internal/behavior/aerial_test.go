package behavior_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/skyshot/arena/internal/behavior"
	"github.com/skyshot/arena/internal/config"
	"github.com/skyshot/arena/internal/geom"
	"pgregory.net/rapid"
)

var ring = []geom.Vec3{
	geom.V(20, 10, 0), geom.V(0, 10, 20), geom.V(-20, 10, 0), geom.V(0, 10, -20),
}

func steadyConfig() config.AerialConfig {
	return config.AerialConfig{
		MoveSpeed:         20,
		RotationSpeed:     7.5,
		CircleDuration:    time.Second,
		WaypointThreshold: 2,
		AttackRange:       35,
		AttackDuration:    time.Second,
		ShootInterval:     250 * time.Millisecond,
		AimThreshold:      180, // always aligned
	}
}

func TestNewAerialRequiresWaypoints(t *testing.T) {
	f := newFixture(t)
	e := f.enemy("Skyray", geom.Zero)
	_, err := behavior.NewAerial(&e.Tag, f.state.Player, nil, steadyConfig(), rand.New(rand.NewSource(1)), nil)
	if !errors.Is(err, behavior.ErrNoWaypoints) {
		t.Fatalf("err = %v, want ErrNoWaypoints", err)
	}
}

func TestAerialAlternatesPhases(t *testing.T) {
	f := newFixture(t)
	e := f.enemy("Skyray", geom.V(0, 10, 0))
	var fired []geom.Vec3
	a, err := behavior.NewAerial(&e.Tag, f.state.Player, ring, steadyConfig(),
		rand.New(rand.NewSource(7)), func(target geom.Vec3) { fired = append(fired, target) })
	if err != nil {
		t.Fatal(err)
	}

	var phases []behavior.Phase
	for i := 0; i < 200; i++ {
		if a.Step(100 * time.Millisecond) {
			phases = append(phases, a.Phase())
		}
	}
	if len(phases) < 6 {
		t.Fatalf("only %d phase entries in 20s", len(phases))
	}
	for i, ph := range phases {
		want := behavior.PhaseCircling
		if i%2 == 1 {
			want = behavior.PhaseAttacking
		}
		if ph != want {
			t.Fatalf("phase entry %d = %v, want %v (sequence %v)", i, ph, want, phases)
		}
	}
	if a.Shots() == 0 || a.Shots() != len(fired) {
		t.Fatalf("shots = %d, fire calls = %d", a.Shots(), len(fired))
	}
	for _, p := range fired {
		if p != f.state.Player.Pos {
			t.Fatalf("fired at %+v, want player position", p)
		}
	}
}

func TestAerialFiresOnceThenOnInterval(t *testing.T) {
	f := newFixture(t)
	e := f.enemy("Skyray", geom.V(0, 10, 0))
	cfg := steadyConfig()
	cfg.CircleDuration = 100 * time.Millisecond
	a, _ := behavior.NewAerial(&e.Tag, f.state.Player, ring, cfg, rand.New(rand.NewSource(1)), nil)

	a.Step(100 * time.Millisecond) // circling ends this tick
	if a.Phase() != behavior.PhaseAttacking {
		t.Fatalf("phase = %v, want attacking", a.Phase())
	}
	a.Step(100 * time.Millisecond) // aligned: immediate shot
	if a.Shots() != 1 || a.AttackStep() != behavior.StepEngaged {
		t.Fatalf("shots = %d step = %v after alignment", a.Shots(), a.AttackStep())
	}
	// shot timer reaches 250ms on the third engaged tick
	for i := 0; i < 3; i++ {
		a.Step(100 * time.Millisecond)
	}
	if a.Shots() != 2 {
		t.Fatalf("shots = %d, want 2", a.Shots())
	}
}

func TestAerialAlignTimeoutFiresNothing(t *testing.T) {
	f := newFixture(t)
	e := f.enemy("Skyray", geom.Zero)
	f.state.Player.Pos = geom.V(10, 0, 0) // 90 degrees off the nose

	cfg := steadyConfig()
	cfg.MoveSpeed = 0
	cfg.RotationSpeed = 0
	cfg.AimThreshold = 0.1
	cfg.CircleDuration = 100 * time.Millisecond
	cfg.AttackDuration = 500 * time.Millisecond
	a, _ := behavior.NewAerial(&e.Tag, f.state.Player, ring, cfg, rand.New(rand.NewSource(1)), nil)

	sawTimeout := false
	for i := 0; i < 20; i++ {
		was := a.Phase()
		if a.Step(100*time.Millisecond) && was == behavior.PhaseAttacking && a.Phase() == behavior.PhaseCircling {
			sawTimeout = true
		}
	}
	if !sawTimeout {
		t.Fatal("attack phase never timed out while aligning")
	}
	if a.Shots() != 0 {
		t.Fatalf("shots = %d, want 0", a.Shots())
	}
}

func TestAerialStopsWhenParkedAndRestartsOnReuse(t *testing.T) {
	f := newFixture(t)
	e := f.enemy("Skyray", geom.V(0, 10, 0))
	a, _ := behavior.NewAerial(&e.Tag, f.state.Player, ring, steadyConfig(), rand.New(rand.NewSource(3)), nil)
	e.Brain = a

	for i := 0; i < 15; i++ {
		a.Step(100 * time.Millisecond)
	}
	if a.Phase() != behavior.PhaseAttacking {
		t.Fatalf("phase = %v, want attacking", a.Phase())
	}

	f.reg.Release(e)
	pos := e.Position
	if a.Step(100 * time.Millisecond) {
		t.Fatal("parked flier transitioned")
	}
	if e.Position != pos {
		t.Fatal("parked flier moved")
	}

	if again := f.enemy("Skyray", geom.V(0, 10, 0)); again != e {
		t.Fatal("expected the parked flier to be reused")
	}
	if a.Phase() != behavior.PhaseIdle {
		t.Fatalf("reused flier phase = %v, want idle", a.Phase())
	}
	if !a.Step(100*time.Millisecond) || a.Phase() != behavior.PhaseCircling {
		t.Fatalf("reused flier should restart circling, got %v", a.Phase())
	}
}

func TestAerialJitterBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := buildFixture()
		cfg := steadyConfig()
		cfg.CircleDuration = 5 * time.Second
		cfg.CircleJitter = 2500 * time.Millisecond
		cfg.AttackDuration = 3 * time.Second
		cfg.AttackJitter = 3500 * time.Millisecond
		seed := rapid.Int64().Draw(t, "seed")

		e := f.enemy("Skyray", geom.V(0, 10, 0))
		a, _ := behavior.NewAerial(&e.Tag, nil, ring, cfg, rand.New(rand.NewSource(seed)), nil)
		for i := 0; i < 60; i++ {
			if !a.Step(time.Second) {
				continue
			}
			d := a.PhaseDuration()
			switch a.Phase() {
			case behavior.PhaseCircling:
				if d < 2500*time.Millisecond || d > 7500*time.Millisecond {
					t.Fatalf("circling duration %v out of range", d)
				}
			case behavior.PhaseAttacking:
				if d < 0 || d > 6500*time.Millisecond {
					t.Fatalf("attacking duration %v out of range", d)
				}
			}
		}
	})
}
