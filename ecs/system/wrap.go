package system

import (
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/frame"
)

// WrapSystem moves entities that left the window to the opposite edge.
type WrapSystem struct{}

func NewWrapSystem() *WrapSystem {
	return &WrapSystem{}
}

func (s *WrapSystem) Update(w *ecs.World, f *frame.Context) {
	if w == nil || f == nil || f.Width <= 0 || f.Height <= 0 {
		return
	}

	ecs.ForEach2(w, component.WrapComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Wrap, t *component.Transform) {
		t.X = WrapAxis(t.X, f.Width)
		t.Y = WrapAxis(t.Y, f.Height)
	})
}

// WrapAxis shifts v by one extent when it lies outside [-extent/2, extent/2].
// It wraps a single step only: displacements beyond one extent stay outside.
func WrapAxis(v, extent float64) float64 {
	half := extent / 2
	if v > half {
		return v - extent
	}
	if v < -half {
		return v + extent
	}
	return v
}
