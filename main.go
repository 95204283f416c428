package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	watch := flag.Bool("watch", false, "reload prefabs and rate scripts when files under prefabs/ change")
	levelName := flag.String("level", "demo", "level name in levels/ (basename, .json optional)")
	tps := flag.Int("tps", ebiten.DefaultTPS, "update ticks per second (-1 syncs updates with the display)")
	flag.Parse()

	if *tps <= 0 && *tps != ebiten.SyncWithFPS {
		log.Fatalf("invalid -tps %d: must be positive or %d", *tps, ebiten.SyncWithFPS)
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("turntable")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
