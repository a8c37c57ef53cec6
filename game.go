package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/astroblasto/common"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/entity"
	"github.com/milk9111/astroblasto/ecs/system"
	"github.com/milk9111/astroblasto/frame"
	"github.com/milk9111/astroblasto/input"
	"github.com/milk9111/astroblasto/prefabs"
)

type Options struct {
	Debug bool
	// Watch reloads player and projectile tuning when prefabs/ changes on disk.
	Watch bool
	Input input.Source
	Now   func() time.Time
}

type Game struct {
	spec  prefabs.GameSpec
	debug bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	fire      *system.FireSystem
	player    ecs.Entity
	frame     frame.Context

	input input.Source
	now   func() time.Time
	last  time.Time

	watcher *prefabs.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, startupError(err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		spec.Width, spec.Height = common.BaseWidth, common.BaseHeight
	}
	if spec.TPS <= 0 {
		spec.TPS = ebiten.DefaultTPS
	}

	world := ecs.NewWorld()
	player, err := entity.NewPlayer(world)
	if err != nil {
		return nil, startupError(err)
	}
	if _, err := entity.NewHUD(world); err != nil {
		return nil, startupError(err)
	}
	template, err := entity.LoadProjectileTemplate()
	if err != nil {
		return nil, startupError(err)
	}

	g := &Game{
		spec:   spec,
		debug:  opts.Debug,
		world:  world,
		render: system.NewRenderSystem(),
		fire:   system.NewFireSystem(template),
		player: player,
		input:  opts.Input,
		now:    opts.Now,
	}
	if g.input == nil {
		g.input = input.NewEbitenSource()
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.frame.Width = float64(spec.Width)
	g.frame.Height = float64(spec.Height)

	g.scheduler = ecs.NewScheduler(
		system.NewPointerSystem(),
		system.NewPlayerControllerSystem(),
		system.NewWrapSystem(),
		g.fire,
		system.NewProjectileSystem(),
		system.NewTTLSystem(),
		system.NewHUDSystem(),
	)
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// startupError keeps asset failures distinguishable and reports everything
// else as an unavailable resource.
func startupError(err error) error {
	if errors.Is(err, common.ErrAssetLoadFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrResourceUnavailable, err)
}

func (g *Game) Spec() prefabs.GameSpec {
	return g.spec
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.reloadPrefabs()
	dt := g.elapsed()
	in := g.input.Poll(g.frame.Height)

	if in.Pause {
		g.setPaused(!g.paused)
	}
	if g.paused {
		if n := len(in.PointerMoves); n > 0 {
			g.frame.Pointer = in.PointerMoves[n-1]
		}
		if g.pauseUI != nil {
			g.pauseUI.Update()
		}
		return nil
	}

	g.frame.Tick(dt, g.frame.Width, g.frame.Height, in)
	g.scheduler.Update(g.world, &g.frame)
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if !paused {
		// the click that closed the menu must not fire
		g.fire.Suppress()
	}
}

func (g *Game) elapsed() float64 {
	now := g.now()
	var d time.Duration
	if !g.last.IsZero() {
		d = now.Sub(g.last)
	}
	g.last = now
	return frameDelta(d, g.spec.TPS)
}

// frameDelta converts a wall-clock delta to seconds, capped at
// common.MaxFrameDelta. A non-positive delta counts as one nominal tick.
func frameDelta(d time.Duration, tps int) float64 {
	if d <= 0 {
		if tps <= 0 {
			tps = ebiten.DefaultTPS
		}
		return 1 / float64(tps)
	}
	if d > common.MaxFrameDelta {
		d = common.MaxFrameDelta
	}
	return d.Seconds()
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Drain() {
		switch name {
		case entity.PlayerPrefab:
			spec, err := prefabs.LoadEntityBuildSpec(name)
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			if err := entity.ApplyPlayerTuning(g.world, g.player, spec); err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
		case entity.ProjectilePrefab:
			template, err := entity.LoadProjectileTemplate()
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			g.fire.SetTemplate(template)
		default:
			continue
		}
		log.Printf("reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.spec.ClearColor.Color)
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("entities: %d  TPS: %.2f", g.world.Count(), ebiten.ActualTPS()), 8, 48)
	}
	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

// Layout keeps the logical screen equal to the window so resizing changes the
// playfield and wrap bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.frame.Width = float64(outsideWidth)
		g.frame.Height = float64(outsideHeight)
	}
	return int(g.frame.Width), int(g.frame.Height)
}
