package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShotgunDef holds the base stats of the player's shotgun and its pellet.
type ShotgunDef struct {
	Spread          float64    `yaml:"spread"` // degrees, applied per axis
	ProjectileCount int        `yaml:"projectile_count"`
	Recoil          float64    `yaml:"recoil"`
	ProjectileSpeed float64    `yaml:"projectile_speed"`
	Damage          float64    `yaml:"damage"`
	Scale           [3]float64 `yaml:"scale"`
	Capacity        int        `yaml:"capacity"` // shells per reload
	Pellet          string     `yaml:"pellet"`   // pool key of the pellet prototype
	Lifetime        int        `yaml:"lifetime"` // ms
}

// BoltDef describes an enemy projectile prototype.
type BoltDef struct {
	Key      string  `yaml:"key"`
	Lifetime int     `yaml:"lifetime"` // ms
	Radius   float64 `yaml:"radius"`
}

type weaponFile struct {
	Shotgun ShotgunDef `yaml:"shotgun"`
	Bolts   []BoltDef  `yaml:"bolts"`
}

// WeaponTable holds the player weapon and enemy projectile definitions.
type WeaponTable struct {
	Shotgun ShotgunDef
	bolts   map[string]*BoltDef
}

// LoadWeaponTable loads weapon definitions from a YAML file.
func LoadWeaponTable(path string) (*WeaponTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weapon_list: %w", err)
	}
	var f weaponFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse weapon_list: %w", err)
	}
	if f.Shotgun.Pellet == "" {
		f.Shotgun.Pellet = "ShotgunPellet"
	}
	t := &WeaponTable{Shotgun: f.Shotgun, bolts: make(map[string]*BoltDef, len(f.Bolts))}
	for i := range f.Bolts {
		b := &f.Bolts[i]
		t.bolts[b.Key] = b
	}
	return t, nil
}

// Bolt returns an enemy projectile definition by key, or nil.
func (t *WeaponTable) Bolt(key string) *BoltDef {
	return t.bolts[key]
}
