package event

import (
	"time"

	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/geom"
)

// EnemyKilled fires once per activation cycle when an enemy's health model
// resolves death.
type EnemyKilled struct {
	EntityID ecs.EntityID
	Key      string
	Position geom.Vec3
	Wave     int
	At       time.Duration // simulated time of death
}

type PlayerDied struct {
	Position geom.Vec3
}

type WaveStarted struct {
	Wave    int
	Enemies int
}

type WaveCleared struct {
	Wave int
}

// PoolPurged reports a bulk teardown of a prototype's instances.
type PoolPurged struct {
	Key       string
	Destroyed int
}
