package pool

import (
	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/geom"
)

// Poolable is anything a Registry can hand out and take back. Embedding Tag
// satisfies it.
type Poolable interface {
	PoolTag() *Tag
}

// Activator is called after an instance is marked active, on first
// construction and on every reuse. Entities reset per-cycle state here.
type Activator interface {
	OnActivate()
}

// Deactivator is called after an instance is parked by Release.
type Deactivator interface {
	OnDeactivate()
}

// Destroyer is called when Purge removes an instance for good.
type Destroyer interface {
	OnDestroy()
}

// Tag is the pool handle stamped on an instance when the Registry constructs
// it. It replaces name-based identity: the owning pool is read straight from
// the tag, so copying or renaming an entity cannot detach it from its pool.
type Tag struct {
	key    string
	id     ecs.EntityID
	active bool

	Position geom.Vec3
	Rotation geom.Quat
}

func (t *Tag) PoolTag() *Tag { return t }

// Key is the prototype key of the owning pool, empty if never acquired.
func (t *Tag) Key() string { return t.key }

func (t *Tag) ID() ecs.EntityID { return t.id }

// Active reports whether the instance is simulating. Behaviors treat a false
// value as their cancellation signal.
func (t *Tag) Active() bool { return t.active }

func (t *Tag) Forward() geom.Vec3 { return t.Rotation.Forward() }
