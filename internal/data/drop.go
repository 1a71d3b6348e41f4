package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DropItem is one possible drop rolled when an enemy dies.
type DropItem struct {
	Item   string `yaml:"item"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
	Chance int    `yaml:"chance"` // out of 1,000,000 (100% = 1000000)
}

type enemyDropEntry struct {
	Enemy string     `yaml:"enemy"`
	Items []DropItem `yaml:"items"`
}

type dropListFile struct {
	Drops []enemyDropEntry `yaml:"drops"`
}

// DropTable holds drop lists indexed by enemy template key.
type DropTable struct {
	drops map[string][]DropItem
}

// Get returns the drop list for an enemy, or nil if none defined.
func (t *DropTable) Get(key string) []DropItem {
	return t.drops[key]
}

// Count returns the number of enemies with drop entries.
func (t *DropTable) Count() int {
	return len(t.drops)
}

// LoadDropTable loads enemy drop data from a YAML file.
func LoadDropTable(path string) (*DropTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read drop_list: %w", err)
	}
	var f dropListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse drop_list: %w", err)
	}
	t := &DropTable{drops: make(map[string][]DropItem, len(f.Drops))}
	for _, entry := range f.Drops {
		for _, it := range entry.Items {
			if it.Max < it.Min {
				return nil, fmt.Errorf("drop_list: %s/%s: max %d < min %d", entry.Enemy, it.Item, it.Max, it.Min)
			}
		}
		t.drops[entry.Enemy] = entry.Items
	}
	return t, nil
}
