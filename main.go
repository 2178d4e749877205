package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starseeker/common"
)

const windowScale = 4

func main() {
	configPath := flag.String("config", "", "path to a starseeker.yaml (default ./starseeker.yaml when present)")
	allItems := flag.Bool("ab", false, "start with every item unlocked")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *debug, *levelName)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.ScreenWidth*windowScale, common.ScreenHeight*windowScale)
	ebiten.SetWindowTitle("starseeker")

	game, err := NewGame(cfg, *allItems)
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
