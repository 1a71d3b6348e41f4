package world

import (
	"math"

	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/geom"
)

// AOIGrid is a broad-phase cell index over the XZ plane. Cell size should be
// at least the largest contact distance so a 3x3 neighbourhood covers it.
// Accessed only from the simulation goroutine, no locks.
type AOIGrid struct {
	cellSize float64
	cells    map[cellKey][]ecs.EntityID
}

type cellKey struct {
	cx, cz int32
}

func NewAOIGrid(cellSize float64) *AOIGrid {
	if cellSize <= 0 {
		cellSize = 8
	}
	return &AOIGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]ecs.EntityID),
	}
}

func (g *AOIGrid) key(p geom.Vec3) cellKey {
	return cellKey{
		cx: int32(math.Floor(p.X / g.cellSize)),
		cz: int32(math.Floor(p.Z / g.cellSize)),
	}
}

// Clear empties every cell but keeps the backing slices for reuse.
func (g *AOIGrid) Clear() {
	for k, ids := range g.cells {
		g.cells[k] = ids[:0]
	}
}

func (g *AOIGrid) Add(id ecs.EntityID, p geom.Vec3) {
	k := g.key(p)
	g.cells[k] = append(g.cells[k], id)
}

// GetNearby returns the IDs in the 3x3 neighbourhood around p. Callers do the
// fine-grained distance check.
func (g *AOIGrid) GetNearby(p geom.Vec3) []ecs.EntityID {
	c := g.key(p)
	var result []ecs.EntityID
	for dx := int32(-1); dx <= 1; dx++ {
		for dz := int32(-1); dz <= 1; dz++ {
			result = append(result, g.cells[cellKey{c.cx + dx, c.cz + dz}]...)
		}
	}
	return result
}
