package pool

import (
	"github.com/skyshot/arena/internal/core/ecs"
	"github.com/skyshot/arena/internal/geom"
	"go.uber.org/zap"
)

// Prototype is the template a pool instantiates from. Key must be stable for
// the lifetime of the Registry.
type Prototype interface {
	Key() string
	Instantiate(id ecs.EntityID) Poolable
}

// Pool holds one prototype's parked instances plus every instance it has
// constructed that has not been purged.
type Pool struct {
	key         string
	inactive    []Poolable
	live        map[ecs.EntityID]Poolable
	constructed int
}

// Registry maps prototype keys to pools. It is owned by one simulation session
// and touched only from the simulation goroutine, so it takes no locks.
type Registry struct {
	world *ecs.World
	pools map[string]*Pool
	log   *zap.Logger
}

func NewRegistry(world *ecs.World, log *zap.Logger) *Registry {
	return &Registry{
		world: world,
		pools: make(map[string]*Pool, 8),
		log:   log,
	}
}

// Acquire returns an active instance of proto placed at pos/rot, reusing the
// oldest parked instance when one exists. It never fails: an unseen key gets
// a fresh pool.
func (r *Registry) Acquire(proto Prototype, pos geom.Vec3, rot geom.Quat) Poolable {
	key := proto.Key()
	p := r.pools[key]
	if p == nil {
		p = &Pool{key: key, live: make(map[ecs.EntityID]Poolable, 8)}
		r.pools[key] = p
		r.log.Debug("pool created", zap.String("key", key))
	}

	var obj Poolable
	if len(p.inactive) > 0 {
		obj = p.inactive[0]
		copy(p.inactive, p.inactive[1:])
		p.inactive[len(p.inactive)-1] = nil
		p.inactive = p.inactive[:len(p.inactive)-1]
	} else {
		id := r.world.CreateEntity()
		obj = proto.Instantiate(id)
		tag := obj.PoolTag()
		tag.key = key
		tag.id = id
		p.live[id] = obj
		p.constructed++
	}

	tag := obj.PoolTag()
	tag.Position = pos
	tag.Rotation = rot
	tag.active = true
	if a, ok := obj.(Activator); ok {
		a.OnActivate()
	}
	return obj
}

// Release parks obj in its pool. It returns false, leaving obj untouched, when
// obj was not handed out by this Registry, was purged, or is already parked.
func (r *Registry) Release(obj Poolable) bool {
	if obj == nil {
		r.log.Warn("release of nil object")
		return false
	}
	tag := obj.PoolTag()
	if tag == nil || tag.key == "" {
		r.log.Warn("release of object with no pool")
		return false
	}
	p := r.pools[tag.key]
	if p == nil {
		r.log.Warn("release of object with no pool", zap.String("key", tag.key))
		return false
	}
	if owned, ok := p.live[tag.id]; !ok || owned != obj {
		r.log.Warn("release of object not owned by pool",
			zap.String("key", tag.key), zap.Uint64("id", uint64(tag.id)))
		return false
	}
	if !tag.active {
		r.log.Warn("double release", zap.String("key", tag.key), zap.Uint64("id", uint64(tag.id)))
		return false
	}

	tag.active = false
	if d, ok := obj.(Deactivator); ok {
		d.OnDeactivate()
	}
	p.inactive = append(p.inactive, obj)
	return true
}

// Purge destroys every instance of key, parked or active. Used when the
// prototype's stats change so stale instances cannot be reused. The pool
// itself survives and refills on the next Acquire.
func (r *Registry) Purge(key string) (int, bool) {
	p := r.pools[key]
	if p == nil {
		r.log.Warn("purge of unknown pool", zap.String("key", key))
		return 0, false
	}
	n := len(p.live)
	for id, obj := range p.live {
		tag := obj.PoolTag()
		tag.active = false
		if d, ok := obj.(Destroyer); ok {
			d.OnDestroy()
		}
		r.world.MarkForDestruction(id)
	}
	clear(p.live)
	clear(p.inactive)
	p.inactive = p.inactive[:0]
	r.log.Debug("pool purged", zap.String("key", key), zap.Int("destroyed", n))
	return n, true
}

// PurgeAll tears every pool down. Called at session shutdown.
func (r *Registry) PurgeAll() {
	for key := range r.pools {
		r.Purge(key)
	}
}

// Constructed returns how many instances key's pool has ever instantiated.
func (r *Registry) Constructed(key string) int {
	if p := r.pools[key]; p != nil {
		return p.constructed
	}
	return 0
}

func (r *Registry) InactiveCount(key string) int {
	if p := r.pools[key]; p != nil {
		return len(p.inactive)
	}
	return 0
}

func (r *Registry) ActiveCount(key string) int {
	if p := r.pools[key]; p != nil {
		return len(p.live) - len(p.inactive)
	}
	return 0
}

// Has reports whether a pool exists for key.
func (r *Registry) Has(key string) bool {
	_, ok := r.pools[key]
	return ok
}
