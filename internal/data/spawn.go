package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry places Count enemies of one template on a ring around the player.
type SpawnEntry struct {
	Key    string  `yaml:"key"`
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

// Wave is one batch of spawns. The next wave starts once every enemy of this
// one has been released.
type Wave struct {
	Wave   int          `yaml:"wave"`
	Spawns []SpawnEntry `yaml:"spawns"`
}

type spawnListFile struct {
	Waves []Wave `yaml:"waves"`
}

// LoadSpawnList loads waves from a YAML file, ordered as written.
func LoadSpawnList(path string) ([]Wave, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn_list: %w", err)
	}
	var f spawnListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse spawn_list: %w", err)
	}
	return f.Waves, nil
}
