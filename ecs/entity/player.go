package entity

import (
	"fmt"

	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/prefabs"
)

const PlayerPrefab = "player.yaml"

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, PlayerPrefab)
}

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	entity, err := NewPlayer(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}

// ApplyPlayerTuning copies the tunable fields of a reloaded player prefab onto
// an existing player, leaving position and rotation untouched.
func ApplyPlayerTuning(w *ecs.World, e ecs.Entity, spec prefabs.EntityBuildSpec) error {
	raw, ok := spec.Components["player"]
	if !ok {
		return fmt.Errorf("player: prefab %q has no player component", spec.Name)
	}
	tuning, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("player: decode tuning: %w", err)
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("player: entity %v has no player component", e)
	}
	p.Speed = tuning.Speed
	return nil
}
