// Command spin runs a level headlessly at a fixed tick length and logs the
// yaw of every rotator.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/ecs/component"
	"github.com/milk9111/turntable/ecs/entity"
	"github.com/milk9111/turntable/ecs/system"
	"github.com/milk9111/turntable/levels"
)

func main() {
	levelName := flag.String("level", "demo", "level name in levels/ (basename, .json optional)")
	ticks := flag.Int("ticks", 60, "number of update ticks to run")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	every := flag.Int("every", 0, "also report every N ticks (0 = only at the end)")
	flag.Parse()

	if err := run(os.Stdout, *levelName, *ticks, *dt, *every); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, levelName string, ticks int, dt float64, every int) error {
	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return fmt.Errorf("load level %s: %w", levelName, err)
	}

	w := ecs.NewWorld()
	ents, err := entity.LoadLevelToWorld(w, lvl)
	if err != nil {
		return err
	}

	scheduler := ecs.NewScheduler(system.NewAxisRotatorSystem(system.FixedDelta(dt), system.NewRateScripts()))
	for i := 1; i <= ticks; i++ {
		scheduler.Update(w)
		if every > 0 && i%every == 0 && i != ticks {
			report(out, w, ents, i)
		}
	}
	report(out, w, ents, ticks)
	return nil
}

func report(out io.Writer, w *ecs.World, ents []ecs.Entity, tick int) {
	for _, e := range ents {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		name := "?"
		if ref, ok := ecs.Get(w, e, component.PrefabRefComponent.Kind()); ok {
			name = ref.Path
		}
		fmt.Fprintf(out, "tick=%d entity=%v prefab=%s yaw=%.4f\n", tick, e, name, t.Rotation.Y)
	}
}
