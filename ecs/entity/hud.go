package entity

import (
	"github.com/milk9111/astroblasto/ecs"
)

var hudPrefabs = []string{"hud_fps.yaml", "hud_shots.yaml"}

func NewHUD(w *ecs.World) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(hudPrefabs))
	for _, p := range hudPrefabs {
		e, err := BuildEntity(w, p)
		if err != nil {
			for _, built := range out {
				ecs.DestroyEntity(w, built)
			}
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
