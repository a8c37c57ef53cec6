package main

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/astroblasto/common"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/ecs/entity"
	"github.com/milk9111/astroblasto/ecs/system"
	"github.com/milk9111/astroblasto/input"
	"github.com/milk9111/astroblasto/prefabs"
)

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		tps  int
		want float64
	}{
		{"first tick", 0, 60, 1.0 / 60},
		{"default tps", 0, 0, 1.0 / float64(ebiten.DefaultTPS)},
		{"normal", 16 * time.Millisecond, 60, 0.016},
		{"clamped", 3 * time.Second, 60, common.MaxFrameDelta.Seconds()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.d, tt.tps); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("frameDelta(%v, %d) = %v, want %v", tt.d, tt.tps, got, tt.want)
			}
		})
	}
}

func TestStartupError(t *testing.T) {
	asset := startupError(common.ErrAssetLoadFailed)
	if !errors.Is(asset, common.ErrAssetLoadFailed) || errors.Is(asset, common.ErrResourceUnavailable) {
		t.Fatalf("asset failure rewrapped: %v", asset)
	}

	other := startupError(errors.New("missing game.yaml"))
	if !errors.Is(other, common.ErrResourceUnavailable) {
		t.Fatalf("expected ErrResourceUnavailable, got %v", other)
	}
}

func newTestGame(t *testing.T, frames ...input.Snapshot) *Game {
	t.Helper()

	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{Speed: common.PlayerSpeed}); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}

	template, err := entity.NewProjectileTemplate(prefabs.EntityBuildSpec{
		Name: "shot",
		Components: map[string]any{
			"projectile": map[string]any{"speed": 500},
			"transform":  map[string]any{},
		},
	})
	if err != nil {
		t.Fatalf("template: %v", err)
	}

	clock := time.Unix(0, 0)
	g := &Game{
		spec:   prefabs.GameSpec{Width: 800, Height: 600, TPS: 60},
		world:  w,
		fire:   system.NewFireSystem(template),
		player: player,
		input:  &input.Script{Frames: frames},
		now: func() time.Time {
			clock = clock.Add(16 * time.Millisecond)
			return clock
		},
	}
	g.frame.Width, g.frame.Height = 800, 600
	g.scheduler = ecs.NewScheduler(
		system.NewPointerSystem(),
		system.NewPlayerControllerSystem(),
		system.NewWrapSystem(),
		g.fire,
		system.NewProjectileSystem(),
	)
	return g
}

func TestGamePauseSuppressesResumeClick(t *testing.T) {
	g := newTestGame(t,
		input.Snapshot{Fire: true},
		input.Snapshot{Pause: true},
		input.Snapshot{Fire: true},
		input.Snapshot{Pause: true, Fire: true},
		input.Snapshot{},
		input.Snapshot{Fire: true},
	)

	wantPaused := []bool{false, true, true, false, false, false}
	wantShots := []int{1, 1, 1, 1, 1, 2}
	for i := range wantPaused {
		if err := g.Update(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if g.paused != wantPaused[i] {
			t.Fatalf("tick %d: paused = %v, want %v", i, g.paused, wantPaused[i])
		}
		if g.frame.Shots != wantShots[i] {
			t.Fatalf("tick %d: shots = %d, want %d", i, g.frame.Shots, wantShots[i])
		}
	}

	n := 0
	ecs.ForEach(g.world, component.ProjectileComponent.Kind(), func(ecs.Entity, *component.Projectile) { n++ })
	if n != 2 {
		t.Fatalf("expected 2 projectiles, got %d", n)
	}
}

func TestGamePausedKeepsWorldFrozen(t *testing.T) {
	g := newTestGame(t,
		input.Snapshot{Pause: true},
		input.Snapshot{Right: true},
		input.Snapshot{Right: true},
	)
	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	tr, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("player transform missing")
	}
	if tr.X != 0 || tr.Y != 0 {
		t.Fatalf("player moved while paused: (%v, %v)", tr.X, tr.Y)
	}
}

func TestGameQuitTerminates(t *testing.T) {
	g := newTestGame(t)
	g.quit = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}

func TestGameLayoutTracksWindow(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	if g.frame.Width != 1024 || g.frame.Height != 768 {
		t.Fatalf("frame size = %vx%v", g.frame.Width, g.frame.Height)
	}

	// a zero size keeps the previous layout
	w, h = g.Layout(0, 0)
	if w != 1024 || h != 768 {
		t.Fatalf("Layout(0, 0) = %dx%d", w, h)
	}
}
