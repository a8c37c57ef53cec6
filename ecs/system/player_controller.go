package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/astroblasto/common"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/frame"
)

// PlayerControllerSystem moves the player from the direction keys and turns it
// toward the pointer.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, f *frame.Context) {
	if w == nil || f == nil {
		return
	}

	in := f.Input
	dir := common.DirectionFromKeys(in.Up, in.Down, in.Left, in.Right)

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		pos := cp.Vector{X: t.X, Y: t.Y}.Add(dir.Mult(p.Speed * f.Dt))
		t.X = pos.X
		t.Y = pos.Y

		from := common.WorldToScreen(f.Width, f.Height, pos)
		t.Rotation = common.LookAt(from, f.Pointer)
	})
}
