package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Enemy kinds.
const (
	KindGround = "ground"
	KindAerial = "aerial"
)

// EnemyTemplate holds static data for an enemy prototype loaded from YAML.
// Zero-valued behavior fields fall back to the [ground]/[aerial] config.
type EnemyTemplate struct {
	Key            string  `yaml:"key"`
	Kind           string  `yaml:"kind"` // ground | aerial
	MaxHealth      float64 `yaml:"max_health"`
	Damage         int     `yaml:"damage"`
	AttackRange    float64 `yaml:"attack_range"`
	BufferRange    float64 `yaml:"buffer_range"`
	AttackCooldown int     `yaml:"attack_cooldown"` // ms
	MoveSpeed      float64 `yaml:"move_speed"`
	WaypointSet    string  `yaml:"waypoint_set"`
	Projectile     string  `yaml:"projectile"` // projectile key fired by aerial enemies
}

type enemyListFile struct {
	Enemies []EnemyTemplate `yaml:"enemies"`
}

// EnemyTable holds all enemy templates indexed by key.
type EnemyTable struct {
	templates map[string]*EnemyTemplate
}

// LoadEnemyTable loads enemy templates from a YAML file.
func LoadEnemyTable(path string) (*EnemyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enemy_list: %w", err)
	}
	return ParseEnemyTable(raw)
}

func ParseEnemyTable(raw []byte) (*EnemyTable, error) {
	var f enemyListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse enemy_list: %w", err)
	}
	t := &EnemyTable{templates: make(map[string]*EnemyTemplate, len(f.Enemies))}
	for i := range f.Enemies {
		e := &f.Enemies[i]
		if e.Key == "" {
			return nil, fmt.Errorf("enemy_list: entry %d has no key", i)
		}
		switch e.Kind {
		case KindGround, KindAerial:
		default:
			return nil, fmt.Errorf("enemy_list: %s: unknown kind %q", e.Key, e.Kind)
		}
		if e.MaxHealth <= 0 {
			return nil, fmt.Errorf("enemy_list: %s: max_health must be positive", e.Key)
		}
		if _, dup := t.templates[e.Key]; dup {
			return nil, fmt.Errorf("enemy_list: duplicate key %s", e.Key)
		}
		t.templates[e.Key] = e
	}
	return t, nil
}

// Get returns a template by key, or nil if not found.
func (t *EnemyTable) Get(key string) *EnemyTemplate {
	return t.templates[key]
}

func (t *EnemyTable) Count() int {
	return len(t.templates)
}
