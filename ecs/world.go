package ecs

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

// System updates a world once per stage run.
type System interface {
	Update(w *World)
}

// Clock is the timing of the stage currently running.
type Clock struct {
	// Frame is the elapsed time of the current rendered frame.
	Frame float64
	// Fixed is the physics step length.
	Fixed float64
	// Steps counts physics steps run since the scheduler started.
	Steps uint64
}

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    Clock
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.entities.gen))
	for i := range w.entities.gen {
		if e, ok := w.entities.entity(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		store = &SparseSet{}
		w.stores[kind.ID()] = store
	}
	store.Set(e.id(), value)
	return nil
}

func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	store := w.store(kind)
	if store == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v := store.Get(e.id())
	return v, v != nil
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	store := w.store(kind)
	return store != nil && w.entities.isAlive(e) && store.Has(e.id())
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	store := w.store(kind)
	if store == nil || !w.entities.isAlive(e) {
		return false
	}
	return store.Remove(e.id())
}

func (w *World) store(kind component.Kind) *SparseSet {
	if w == nil || kind == nil {
		return nil
	}
	return w.stores[kind.ID()]
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clock returns the timing of the stage being run.
func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// SetClock overrides the stage timing. The scheduler calls it before each
// stage; tests use it to drive systems directly.
func (w *World) SetClock(c Clock) {
	if w == nil {
		return
	}
	w.clock = c
}
