package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Upgrade kinds understood by the weapon package.
const (
	UpgradeSlug  = "slug"
	UpgradeBlast = "blast"
)

// Upgrade is one weapon modification. Slug divides the projectile count by
// CountAdj, blast multiplies it; every other field is additive.
type Upgrade struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind"`
	SpreadAdj float64    `yaml:"spread_adj"`
	DamageAdj float64    `yaml:"damage_adj"`
	CountAdj  int        `yaml:"count_adj"`
	RecoilAdj float64    `yaml:"recoil_adj"`
	SpeedAdj  float64    `yaml:"speed_adj"`
	ScaleAdj  [3]float64 `yaml:"scale_adj"`
}

type upgradeListFile struct {
	Upgrades []Upgrade `yaml:"upgrades"`
}

// LoadUpgradeList loads weapon upgrades in file order.
func LoadUpgradeList(path string) ([]Upgrade, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upgrade_list: %w", err)
	}
	var f upgradeListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse upgrade_list: %w", err)
	}
	for _, u := range f.Upgrades {
		if u.Kind != UpgradeSlug && u.Kind != UpgradeBlast {
			return nil, fmt.Errorf("upgrade_list: %s: unknown kind %q", u.Name, u.Kind)
		}
	}
	return f.Upgrades, nil
}
