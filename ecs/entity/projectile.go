package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/astroblasto/common"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/prefabs"
)

const ProjectilePrefab = "projectile.yaml"

// ProjectileTemplate is a parsed projectile prefab, kept so that firing does
// not hit the filesystem.
type ProjectileTemplate struct {
	Spec  prefabs.EntityBuildSpec
	Speed float64
}

func LoadProjectileTemplate() (ProjectileTemplate, error) {
	spec, err := prefabs.LoadEntityBuildSpec(ProjectilePrefab)
	if err != nil {
		return ProjectileTemplate{}, fmt.Errorf("projectile: %w", err)
	}
	return NewProjectileTemplate(spec)
}

// NewProjectileTemplate reads the shot speed from the prefab's projectile
// component, falling back to common.ShotSpeed when unset.
func NewProjectileTemplate(spec prefabs.EntityBuildSpec) (ProjectileTemplate, error) {
	raw, ok := spec.Components["projectile"]
	if !ok {
		return ProjectileTemplate{}, fmt.Errorf("projectile: prefab %q has no projectile component", spec.Name)
	}
	ps, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return ProjectileTemplate{}, fmt.Errorf("projectile: decode: %w", err)
	}
	speed := ps.Speed
	if speed == 0 {
		speed = common.ShotSpeed
	}
	return ProjectileTemplate{Spec: spec, Speed: speed}, nil
}

// Spawn creates a projectile at pos moving along dir (expected unit or zero)
// at the template speed.
func (t ProjectileTemplate) Spawn(w *ecs.World, pos, dir cp.Vector, rotation float64) (ecs.Entity, error) {
	e, err := BuildEntityFromSpec(w, t.Spec)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos.X, pos.Y, rotation); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: set transform: %w", err)
	}
	vel := dir.Mult(t.Speed)
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{VX: vel.X, VY: vel.Y}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: set velocity: %w", err)
	}
	return e, nil
}
