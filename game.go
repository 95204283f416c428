package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/ecs/entity"
	"github.com/milk9111/turntable/ecs/render"
	"github.com/milk9111/turntable/ecs/system"
	"github.com/milk9111/turntable/levels"
	"github.com/milk9111/turntable/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *render.RenderSystem
	watcher   *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelName, err)
	}

	world := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(world, lvl); err != nil {
		return nil, err
	}

	g := &Game{
		debug:  debug,
		world:  world,
		render: render.NewRenderSystem(debug),
	}

	scripts := system.NewRateScripts()
	var changes <-chan string
	if watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir, prefabs.DiskDir+"/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
			changes = w.Events
		}
	}

	delta := system.FrameDelta(ebiten.TPS, time.Now)

	g.scheduler = ecs.NewScheduler(
		system.NewPrefabReloadSystem(changes, scripts),
		system.NewAxisRotatorSystem(delta, scripts),
	)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watcher: %v", err)
			}
		default:
		}
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    TPS: %.2f    FPS: %.2f", g.frames, ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
