package world

import (
	"time"

	"github.com/skyshot/arena/internal/geom"
	"github.com/skyshot/arena/internal/pool"
)

//go:generate go tool mockgen -destination=./mocks/navigator_mock.go -package=mocks . Navigator

// Navigator is the path-following capability grounded enemies delegate
// movement to. Path computation lives behind it.
type Navigator interface {
	SetDestination(p geom.Vec3)
	SetStopped(stopped bool)
}

// Locatable is anything with a world position, typically the player.
type Locatable interface {
	Position() geom.Vec3
}

// Agent is a straight-line Navigator for open arenas. It walks the body
// toward the destination on the XZ plane at Speed units per second.
type Agent struct {
	body    *pool.Tag
	Speed   float64
	dest    geom.Vec3
	hasDest bool
	stopped bool
}

func NewAgent(body *pool.Tag, speed float64) *Agent {
	return &Agent{body: body, Speed: speed}
}

func (a *Agent) SetDestination(p geom.Vec3) {
	a.dest = p
	a.hasDest = true
}

func (a *Agent) SetStopped(stopped bool) { a.stopped = stopped }

func (a *Agent) Stopped() bool { return a.stopped }

func (a *Agent) Destination() (geom.Vec3, bool) { return a.dest, a.hasDest }

// Reset forgets the destination; called when the owner is reactivated.
func (a *Agent) Reset() {
	a.hasDest = false
	a.stopped = false
}

// Step advances the body by one tick.
func (a *Agent) Step(dt time.Duration) {
	if a.stopped || !a.hasDest || !a.body.Active() {
		return
	}
	pos := a.body.Position
	goal := geom.V(a.dest.X, pos.Y, a.dest.Z)
	dir := goal.Sub(pos)
	if dir.LenSq() < 1e-8 {
		return
	}
	a.body.Rotation = geom.LookRotation(dir)
	a.body.Position = geom.MoveTowards(pos, goal, a.Speed*dt.Seconds())
}
