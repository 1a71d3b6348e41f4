package ecs

import "testing"

func TestDestroyInvalidatesStaleIDs(t *testing.T) {
	w := NewWorld()
	store := NewPtrComponentStore[int]()
	w.Registry().Register(store)

	id := w.CreateEntity()
	v := 7
	store.Set(id, &v)

	w.MarkForDestruction(id)
	if !w.Alive(id) || w.Pending() != 1 {
		t.Fatal("destruction must be deferred until flush")
	}
	w.FlushDestroyQueue()
	if w.Alive(id) || store.Has(id) {
		t.Fatal("flushed entity still alive or still stored")
	}

	reused := w.CreateEntity()
	if reused.Index() != id.Index() || reused.Generation() == id.Generation() {
		t.Fatalf("slot reuse: old=%v new=%v", id, reused)
	}
	if w.Alive(id) {
		t.Fatal("stale handle reports alive after slot reuse")
	}
}
