package ecs

import "github.com/milk9111/astroblasto/ecs/component"

// ForEach calls fn for every live entity that has a component of kind a.
// Iteration runs over a snapshot, so fn may add, remove or destroy.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	if w == nil || fn == nil {
		return
	}
	sa, err := storeFor(w, a, false)
	if err != nil || sa == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sb, err := storeFor(w, b, false)
	if err != nil || sb == nil {
		return
	}
	ForEach(w, a, func(e Entity, va *A) {
		vb, ok := sb.get(e.id())
		if !ok {
			return
		}
		fn(e, va, vb)
	})
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sc, err := storeFor(w, c, false)
	if err != nil || sc == nil {
		return
	}
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		vc, ok := sc.get(e.id())
		if !ok {
			return
		}
		fn(e, va, vb, vc)
	})
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	sd, err := storeFor(w, d, false)
	if err != nil || sd == nil {
		return
	}
	ForEach3(w, a, b, c, func(e Entity, va *A, vb *B, vc *C) {
		vd, ok := sd.get(e.id())
		if !ok {
			return
		}
		fn(e, va, vb, vc, vd)
	})
}
