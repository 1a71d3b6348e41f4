package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Defaults()
	if cfg.Simulation.TickRate != want.Simulation.TickRate {
		t.Errorf("tick_rate = %s, want %s", cfg.Simulation.TickRate, want.Simulation.TickRate)
	}
	if !cfg.Projectile.ExpireInclusive {
		t.Error("expire_inclusive should default to true")
	}
	if cfg.Aerial.CircleJitter != 2500*time.Millisecond {
		t.Errorf("circle_jitter = %s", cfg.Aerial.CircleJitter)
	}
	if cfg.Server.StartTime == 0 {
		t.Error("start time not stamped")
	}
}

func TestParseOverrides(t *testing.T) {
	raw := []byte(`
[simulation]
tick_rate = "50ms"
seed = 42

[projectile]
expire_inclusive = false

[aerial]
attack_range = 12.5
`)
	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Simulation.TickRate != 50*time.Millisecond {
		t.Errorf("tick_rate = %s", cfg.Simulation.TickRate)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("seed = %d", cfg.Simulation.Seed)
	}
	if cfg.Projectile.ExpireInclusive {
		t.Error("expire_inclusive override ignored")
	}
	if cfg.Aerial.AttackRange != 12.5 {
		t.Errorf("attack_range = %v", cfg.Aerial.AttackRange)
	}
	// untouched sections keep their defaults
	if cfg.Ground.AttackCooldown != 2*time.Second {
		t.Errorf("attack_cooldown = %s", cfg.Ground.AttackCooldown)
	}
}

func TestParseRejectsNonPositiveTickRate(t *testing.T) {
	if _, err := Parse([]byte("[simulation]\ntick_rate = \"0s\"\n")); err == nil {
		t.Fatal("expected error for zero tick rate")
	}
}

func TestParseRejectsMalformedToml(t *testing.T) {
	if _, err := Parse([]byte("[simulation\n")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "arena.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.DSN != "" {
		t.Errorf("shipped config should leave the ledger disabled, got dsn %q", cfg.Database.DSN)
	}
	if cfg.Paths.Data != "data/yaml" {
		t.Errorf("paths.data = %q", cfg.Paths.Data)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped fs.ErrNotExist", err)
	}
}
