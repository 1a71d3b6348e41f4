package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skyshot/arena/internal/geom"
)

type waypointSet struct {
	Name   string       `yaml:"name"`
	Points [][3]float64 `yaml:"points"`
}

type waypointListFile struct {
	Sets []waypointSet `yaml:"sets"`
}

// WaypointTable holds named waypoint sets used by circling fliers.
type WaypointTable struct {
	sets map[string][]geom.Vec3
}

// LoadWaypointTable loads waypoint sets from a YAML file.
func LoadWaypointTable(path string) (*WaypointTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read waypoint_list: %w", err)
	}
	var f waypointListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse waypoint_list: %w", err)
	}
	t := &WaypointTable{sets: make(map[string][]geom.Vec3, len(f.Sets))}
	for _, s := range f.Sets {
		pts := make([]geom.Vec3, len(s.Points))
		for i, p := range s.Points {
			pts[i] = geom.V(p[0], p[1], p[2])
		}
		t.sets[s.Name] = pts
	}
	return t, nil
}

// Get returns the named set, or nil. Callers must not mutate the result.
func (t *WaypointTable) Get(name string) []geom.Vec3 {
	return t.sets[name]
}

func (t *WaypointTable) Count() int {
	return len(t.sets)
}
