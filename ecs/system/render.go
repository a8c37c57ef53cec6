package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/astroblasto/common"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws sprites in world space and text in screen space. It is
// called from Game.Draw rather than scheduled.
type RenderSystem struct {
	face text.Face
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	entities := w.Query(component.TransformComponent.Kind())
	sortByLayer(w, entities)

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			if txt, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok {
				r.drawText(screen, t, txt)
			}
			continue
		}

		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(nonZero(t.ScaleX), nonZero(t.ScaleY))
		// world rotation is counter-clockwise in a y-up space
		op.GeoM.Rotate(-t.Rotation)
		x, y := common.ToDrawPosition(width, height, cp.Vector{X: t.X, Y: t.Y})
		op.GeoM.Translate(x, y)

		screen.DrawImage(s.Image, op)
	}
}

func (r *RenderSystem) drawText(screen *ebiten.Image, t *component.Transform, txt *component.Text) {
	if txt.Value == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X, t.Y)
	c := txt.Color
	if c == nil {
		c = color.White
	}
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, txt.Value, r.face, op)
}

// sortByLayer orders entities by RenderLayer index, then by entity handle.
func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
