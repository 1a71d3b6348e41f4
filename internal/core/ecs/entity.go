package ecs

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. Destroying an entity bumps the generation so
// handles held by stale pooled objects stop resolving.
type EntityID uint64

func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// EntityPool allocates generational IDs and recycles destroyed slots.
// Index 0 generation 0 is reserved so the zero EntityID never names a live entity.
type EntityPool struct {
	generations []uint32
	freeList    []uint32
	nextIndex   uint32
	live        int
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 1, 256),
		freeList:    make([]uint32, 0, 64),
		nextIndex:   1,
	}
}

func (p *EntityPool) Create() EntityID {
	p.live++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return NewEntityID(idx, p.generations[idx])
	}
	idx := p.nextIndex
	p.nextIndex++
	p.generations = append(p.generations, 0)
	return NewEntityID(idx, 0)
}

func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.Index()
	if idx == 0 || idx >= p.nextIndex {
		return false
	}
	return p.generations[idx] == id.Generation()
}

// Destroy invalidates id. Stale or unknown IDs are ignored.
func (p *EntityPool) Destroy(id EntityID) {
	if !p.Alive(id) {
		return
	}
	idx := id.Index()
	p.generations[idx]++
	p.freeList = append(p.freeList, idx)
	p.live--
}

// Live returns the number of allocated, not yet destroyed IDs.
func (p *EntityPool) Live() int { return p.live }
