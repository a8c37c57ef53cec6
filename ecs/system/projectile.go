package system

import (
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/frame"
)

// ProjectileSystem advances every projectile by its velocity.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World, f *frame.Context) {
	if w == nil || f == nil {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
		t.X += p.VX * f.Dt
		t.Y += p.VY * f.Dt
	})
}
