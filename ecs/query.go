package ecs

import (
	"slices"

	"github.com/milk9111/platformer/ecs/component"
)

// Query returns the live entities holding every kind, in id order.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	stores := make([]*SparseSet, 0, len(kinds))
	for _, kind := range kinds {
		store := w.store(kind)
		if store.Len() == 0 {
			return nil
		}
		stores = append(stores, store)
	}
	// iterate the smallest set
	slices.SortFunc(stores, func(a, b *SparseSet) int { return a.Len() - b.Len() })

	ids := make([]entityID, 0, stores[0].Len())
outer:
	for _, id := range stores[0].ids() {
		for _, other := range stores[1:] {
			if !other.Has(id) {
				continue outer
			}
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest live entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	store := w.store(kind)
	if store.Len() == 0 {
		return 0, false
	}
	var best entityID
	for _, id := range store.ids() {
		if _, ok := w.entities.entity(id); !ok {
			continue
		}
		if best == 0 || id < best {
			best = id
		}
	}
	if best == 0 {
		return 0, false
	}
	return w.entities.entity(best)
}
