package ecs

// World owns the entity allocator, the component registry and the deferred
// destruction queue. Purged pool instances are queued here and flushed by the
// CleanupSystem at the end of the tick, so systems iterating a store never
// see an entry vanish mid-loop.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 32),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// MarkForDestruction queues id for end-of-tick cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending reports how many entities wait in the destroy queue.
func (w *World) Pending() int { return len(w.destroyQueue) }

// FlushDestroyQueue removes queued entities from every store and invalidates their IDs.
func (w *World) FlushDestroyQueue() {
	for _, id := range w.destroyQueue {
		w.registry.RemoveAll(id)
		w.pool.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}
