package ecs

import "github.com/milk9111/astroblasto/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) (*sparseSet[T], error) {
	if !kind.Valid() {
		return nil, component.ErrInvalidComponentKind
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil, nil
		}
		set := &sparseSet[T]{}
		w.stores[kind.ID()] = set
		return set, nil
	}
	set, ok := s.(*sparseSet[T])
	if !ok {
		return nil, component.ErrInvalidComponentKind
	}
	return set, nil
}

// Add inserts or replaces the component of the given kind on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	set, err := storeFor(w, kind, true)
	if err != nil {
		return err
	}
	set.set(e.id(), value)
	return nil
}

// Remove deletes the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	set, err := storeFor(w, kind, false)
	if err != nil || set == nil {
		return false
	}
	return set.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Get returns the live component pointer; mutations are visible to later systems.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	set, err := storeFor(w, kind, false)
	if err != nil || set == nil {
		return nil, false
	}
	return set.get(e.id())
}
