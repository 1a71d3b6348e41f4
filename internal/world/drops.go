package world

import (
	"math/rand"

	"github.com/skyshot/arena/internal/data"
	"go.uber.org/zap"
)

// CommonItem is the drop-table item name counted as a common pickup.
const CommonItem = "common"

// Dropper rolls an enemy's drop list on death.
type Dropper struct {
	items []data.DropItem
	state *State
	rng   *rand.Rand
	log   *zap.Logger
}

func NewDropper(items []data.DropItem, state *State, rng *rand.Rand, log *zap.Logger) *Dropper {
	return &Dropper{items: items, state: state, rng: rng, log: log}
}

func (d *Dropper) DropCommons() {
	for _, it := range d.items {
		if d.rng.Intn(1_000_000) >= it.Chance {
			continue
		}
		n := it.Min
		if it.Max > it.Min {
			n += d.rng.Intn(it.Max - it.Min + 1)
		}
		if it.Item == CommonItem {
			d.state.Commons += n
		}
		d.log.Debug("drop", zap.String("item", it.Item), zap.Int("count", n))
	}
}
