package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/logger"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders, probes and the motion state")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "test_room.json", "level file on disk or in the embedded levels")
	tuningPath := flag.String("tuning", "", "tuning document applied to the player on start")
	watch := flag.Bool("watch", false, "hot reload prefabs and scripts edited on disk")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFormat := flag.String("log-format", "console", "console, text or json")
	flag.Parse()

	log := logger.Init(logger.Config{Level: *logLevel, Format: *logFormat})

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("platformer")

	game, err := NewGame(Options{
		Level:  *levelName,
		Tuning: *tuningPath,
		Debug:  *debug,
		Watch:  *watch,
	})
	if err != nil {
		log.Error("start failed", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}
