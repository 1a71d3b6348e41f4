package system

import (
	"github.com/skyshot/arena/internal/core/event"
	"github.com/skyshot/arena/internal/data"
	"github.com/skyshot/arena/internal/weapon"
	"go.uber.org/zap"
)

// Upgrader grants one weapon upgrade per cleared wave, cycling through the
// upgrade list.
type Upgrader struct {
	gun      *weapon.Shotgun
	upgrades []data.Upgrade
	log      *zap.Logger
	applied  int
}

// NewUpgrader subscribes to WaveCleared on bus.
func NewUpgrader(bus *event.Bus, gun *weapon.Shotgun, upgrades []data.Upgrade, log *zap.Logger) *Upgrader {
	u := &Upgrader{gun: gun, upgrades: upgrades, log: log}
	event.Subscribe(bus, u.onWaveCleared)
	return u
}

func (u *Upgrader) onWaveCleared(ev event.WaveCleared) {
	if len(u.upgrades) == 0 {
		return
	}
	up := u.upgrades[u.applied%len(u.upgrades)]
	u.applied++
	u.gun.Upgrade(up)
	u.log.Debug("wave reward", zap.Int("wave", ev.Wave), zap.String("upgrade", up.Name))
}

// Applied returns how many upgrades have been granted.
func (u *Upgrader) Applied() int { return u.applied }
