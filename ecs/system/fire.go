package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/astroblasto/common"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/ecs/entity"
	"github.com/milk9111/astroblasto/frame"
)

// FireSystem spawns one projectile per press of the primary button, aimed from
// the player at the pointer.
type FireSystem struct {
	template entity.ProjectileTemplate
	held     bool
}

func NewFireSystem(template entity.ProjectileTemplate) *FireSystem {
	return &FireSystem{template: template}
}

// SetTemplate swaps the projectile prefab, e.g. after a hot reload.
func (s *FireSystem) SetTemplate(template entity.ProjectileTemplate) {
	s.template = template
}

// Suppress treats the button as already held, so a press that started
// elsewhere (such as on the pause menu) does not fire.
func (s *FireSystem) Suppress() {
	s.held = true
}

func (s *FireSystem) Update(w *ecs.World, f *frame.Context) {
	if w == nil || f == nil {
		return
	}

	pressed := f.Input.Fire && !s.held
	s.held = f.Input.Fire
	if !pressed {
		return
	}

	target := common.ScreenToWorld(f.Width, f.Height, f.Pointer)
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Player, t *component.Transform) {
		from := cp.Vector{X: t.X, Y: t.Y}
		dir := common.Normalize(target.Sub(from))
		if _, err := s.template.Spawn(w, from, dir, common.LookAtWorld(from, target)); err != nil {
			panic("fire system: spawn projectile: " + err.Error())
		}
		f.Shots++
	})
}
