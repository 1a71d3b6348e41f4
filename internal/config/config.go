package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Simulation SimulationConfig `toml:"simulation"`
	Database   DatabaseConfig   `toml:"database"`
	Paths      PathsConfig      `toml:"paths"`
	Ground     GroundConfig     `toml:"ground"`
	Aerial     AerialConfig     `toml:"aerial"`
	Projectile ProjectileConfig `toml:"projectile"`
	Logging    LoggingConfig    `toml:"logging"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	StartTime int64  // set at boot, not from config
}

type SimulationConfig struct {
	TickRate       time.Duration `toml:"tick_rate"`
	Seed           int64         `toml:"seed"`      // 0 = seed from clock
	MaxTicks       int           `toml:"max_ticks"` // 0 = run until signalled
	WaveInterval   time.Duration `toml:"wave_interval"`
	PlayerStrength float64       `toml:"player_strength"`
	PlayerDefense  float64       `toml:"player_defense"`
	PlayerMaxHP    float64       `toml:"player_max_hp"`
	PlayerMass     float64       `toml:"player_mass"`   // recoil impulse divisor
	Gravity        float64       `toml:"gravity"`       // units/s^2 pulling the player down
	FireInterval   time.Duration `toml:"fire_interval"` // autopilot trigger cadence
}

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"` // empty = kill ledger disabled
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
	FlushInterval   time.Duration `toml:"flush_interval"`
}

type PathsConfig struct {
	Data    string `toml:"data"`    // directory holding the yaml tables
	Scripts string `toml:"scripts"` // lua script root
}

// GroundConfig holds fallbacks for grounded enemies whose template omits them.
type GroundConfig struct {
	AttackRange    float64       `toml:"attack_range"`
	BufferRange    float64       `toml:"buffer_range"`
	AttackCooldown time.Duration `toml:"attack_cooldown"`
	MoveSpeed      float64       `toml:"move_speed"`
}

type AerialConfig struct {
	MoveSpeed         float64       `toml:"move_speed"`
	RotationSpeed     float64       `toml:"rotation_speed"`
	CircleDuration    time.Duration `toml:"circle_duration"`
	CircleJitter      time.Duration `toml:"circle_jitter"`
	WaypointThreshold float64       `toml:"waypoint_threshold"`
	AttackRange       float64       `toml:"attack_range"`
	AttackDuration    time.Duration `toml:"attack_duration"`
	AttackJitter      time.Duration `toml:"attack_jitter"`
	ShootInterval     time.Duration `toml:"shoot_interval"`
	ProjectileSpeed   float64       `toml:"projectile_speed"`
	AimThreshold      float64       `toml:"aim_threshold"` // degrees
}

type ProjectileConfig struct {
	Lifetime        time.Duration `toml:"lifetime"`
	ExpireInclusive bool          `toml:"expire_inclusive"`
	HitRadius       float64       `toml:"hit_radius"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Simulation.TickRate <= 0 {
		return nil, fmt.Errorf("simulation.tick_rate must be positive, got %s", cfg.Simulation.TickRate)
	}
	cfg.Server.StartTime = time.Now().Unix()
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "arena",
		},
		Simulation: SimulationConfig{
			TickRate:       20 * time.Millisecond,
			WaveInterval:   10 * time.Second,
			PlayerStrength: 1,
			PlayerDefense:  0,
			PlayerMaxHP:    100,
			PlayerMass:     10,
			Gravity:        9.81,
			FireInterval:   400 * time.Millisecond,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    4,
			MaxIdleConns:    1,
			ConnMaxLifetime: 30 * time.Minute,
			FlushInterval:   5 * time.Second,
		},
		Paths: PathsConfig{
			Data:    "data/yaml",
			Scripts: "scripts",
		},
		Ground: GroundConfig{
			AttackRange:    2,
			BufferRange:    0.5,
			AttackCooldown: 2 * time.Second,
			MoveSpeed:      3.5,
		},
		Aerial: AerialConfig{
			MoveSpeed:         20,
			RotationSpeed:     7.5,
			CircleDuration:    5 * time.Second,
			CircleJitter:      2500 * time.Millisecond,
			WaypointThreshold: 2,
			AttackRange:       35,
			AttackDuration:    3 * time.Second,
			AttackJitter:      3500 * time.Millisecond,
			ShootInterval:     500 * time.Millisecond,
			ProjectileSpeed:   60,
			AimThreshold:      0.1,
		},
		Projectile: ProjectileConfig{
			Lifetime:        5 * time.Second,
			ExpireInclusive: true,
			HitRadius:       0.75,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
