package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/astroblasto/assets"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"player":       addPlayer,
	"projectile":   addProjectile,
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"wrap":         addWrap,
	"screen_space": addScreenSpace,
	"text":         addText,
	"hud_text":     addHUDText,
}

var componentBuildOrder = []string{
	"player_tag",
	"player",
	"projectile",
	"transform",
	"sprite",
	"render_layer",
	"wrap",
	"screen_space",
	"text",
	"hud_text",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec)
}

// BuildEntityFromSpec creates an entity and applies the spec's components in
// componentBuildOrder. On failure the partial entity is destroyed.
func BuildEntityFromSpec(w *ecs.World, spec entityPrefabSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", spec.Name)
	}

	// reject unknown names before allocating
	names := make([]string, 0, len(spec.Components))
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, name)
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return buildRank(names[i]) < buildRank(names[j])
	})

	e := ecs.CreateEntity(w)
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name]); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
	}

	return e, nil
}

func buildRank(name string) int {
	for i, n := range componentBuildOrder {
		if n == name {
			return i
		}
	}
	return len(componentBuildOrder)
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addWrap(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.WrapComponent.Kind(), &component.Wrap{})
}

func addScreenSpace(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.Speed < 0 {
		return fmt.Errorf("player speed must not be negative, got %v", spec.Speed)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Speed: spec.Speed})
}

type projectileSpec = prefabs.ProjectileComponentSpec

func addProjectile(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{}); err != nil {
		return err
	}
	if spec.TTLSeconds > 0 {
		return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.TTLSeconds})
	}
	return nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := assets.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero && sprite.Image != nil {
		b := sprite.Image.Bounds()
		sprite.OriginX = float64(b.Dx()) / 2
		sprite.OriginY = float64(b.Dy()) / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type textSpec = prefabs.TextComponentSpec

func addText(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[textSpec](raw)
	if err != nil {
		return fmt.Errorf("decode text spec: %w", err)
	}
	c := color.Color(color.White)
	if spec.Color != "" {
		parsed, err := prefabs.ParseHexColor(spec.Color)
		if err != nil {
			return fmt.Errorf("parse text color: %w", err)
		}
		c = parsed
	}
	return ecs.Add(w, e, component.TextComponent.Kind(), &component.Text{Value: spec.Value, Color: c})
}

type hudTextSpec = prefabs.HUDTextComponentSpec

func addHUDText(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[hudTextSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hud_text spec: %w", err)
	}
	kind := component.HUDKind(spec.Kind)
	switch kind {
	case component.HUDKindFPS, component.HUDKindShots:
	default:
		return fmt.Errorf("unknown hud_text kind %q", spec.Kind)
	}
	return ecs.Add(w, e, component.HUDTextComponent.Kind(), &component.HUDText{Kind: kind})
}
